package engine

import (
	"slices"

	"trfind/internal/repeat"
)

// SortByFirst orders candidates by region start, keeping the relative order of ties.
func SortByFirst(reps []*repeat.TandemRepeat) {
	slices.SortStableFunc(reps, func(a, b *repeat.TandemRepeat) int { return a.First - b.First })
}

// Dedupe keeps one candidate per maximal cluster of overlapping regions. The
// input must be sorted by First. Within a cluster the larger region wins and a
// later candidate of equal size replaces the earlier one. Dedupe reuses the
// backing array of reps.
func Dedupe(reps []*repeat.TandemRepeat) []*repeat.TandemRepeat {
	if len(reps) == 0 {
		return reps
	}
	out := reps[:1]
	lo, hi := reps[0].First, reps[0].Last
	for _, t := range reps[1:] {
		if !repeat.Overlaps(lo, hi, t.First, t.Last) {
			out = append(out, t)
			lo, hi = t.First, t.Last
			continue
		}
		lo, hi = min(lo, t.First), max(hi, t.Last)
		if best := out[len(out)-1]; t.Size() >= best.Size() {
			out[len(out)-1] = t
		}
	}
	clear(reps[len(out):])
	return out
}
