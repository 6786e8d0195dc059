package engine

import (
	"slices"

	"trfind/internal/repeat"
)

// bucket is every candidate that ended at the same position.
type bucket struct {
	end  int
	reps []*repeat.TandemRepeat
}

// group is one apparent size. Buckets are kept ascending by end; the
// detector only ever appends at the current scan position, so no sorting
// is needed and the highest end is always the last bucket.
type group struct {
	buckets []bucket
}

func (g *group) add(end int, tr *repeat.TandemRepeat) {
	if n := len(g.buckets); n > 0 && g.buckets[n-1].end == end {
		g.buckets[n-1].reps = append(g.buckets[n-1].reps, tr)
		return
	}
	g.buckets = append(g.buckets, bucket{end: end, reps: []*repeat.TandemRepeat{tr}})
}

func (g *group) empty() bool { return len(g.buckets) == 0 }

func (g *group) top() bucket { return g.buckets[len(g.buckets)-1] }

func (g *group) pop() bucket {
	b := g.top()
	g.buckets = g.buckets[:len(g.buckets)-1]
	return b
}

// Groups maps apparent size to the candidates detected with it.
type Groups struct {
	bySize map[int]*group
	count  int
}

func newGroups() *Groups { return &Groups{bySize: make(map[int]*group)} }

func (gs *Groups) add(size, end int, tr *repeat.TandemRepeat) {
	g, ok := gs.bySize[size]
	if !ok {
		g = &group{}
		gs.bySize[size] = g
	}
	g.add(end, tr)
	gs.count++
}

// Len is the number of raw candidates across all groups.
func (gs *Groups) Len() int { return gs.count }

// Sizes returns the apparent sizes present, ascending.
func (gs *Groups) Sizes() []int {
	sizes := make([]int, 0, len(gs.bySize))
	for s := range gs.bySize {
		sizes = append(sizes, s)
	}
	slices.Sort(sizes)
	return sizes
}

// Ends returns the distinct end positions recorded for size, ascending.
func (gs *Groups) Ends(size int) []int {
	g, ok := gs.bySize[size]
	if !ok {
		return nil
	}
	ends := make([]int, len(g.buckets))
	for i, b := range g.buckets {
		ends[i] = b.end
	}
	return ends
}
