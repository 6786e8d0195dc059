package engine

import (
	"trfind/internal/repeat"
	"trfind/internal/thresholds"
)

// Refine collapses every apparent-size group into consolidated repeats. Groups
// are consumed; sizes are visited ascending so the output order is stable.
func Refine(gs *Groups, indel float64) []*repeat.TandemRepeat {
	out := make([]*repeat.TandemRepeat, 0, len(gs.bySize))
	for _, size := range gs.Sizes() {
		out = refineGroup(gs.bySize[size], size, indel, out)
		delete(gs.bySize, size)
	}
	gs.count = 0
	return out
}

// refineGroup walks one group from its highest end downwards. Each anchor
// absorbs the chain of earlier candidates sitting one unit to its left; a gap
// larger than the indel drift ends the chain and the next anchor starts there.
func refineGroup(g *group, unit int, indel float64, out []*repeat.TandemRepeat) []*repeat.TandemRepeat {
	maxDelta := thresholds.MaxDelta(indel, unit)
	for !g.empty() {
		b := g.pop()
		anchor := b.reps[0]
		upper := b.end - unit
		lower := upper - maxDelta
		beginning := anchor.PatternBeginning - unit
		merges := 0

		for !g.empty() {
			e := g.top()
			if e.end > upper {
				g.pop()
				continue
			}
			if e.end < lower {
				break
			}
			merges++
			beginning = e.reps[0].PatternBeginning - unit
			upper = e.end - unit
			lower = upper - maxDelta
			g.pop()
		}

		anchor.NumCopies = float64(merges + 2)
		anchor.First = max(0, beginning)
		out = append(out, anchor)
	}
	return out
}
