package engine

// probeIndex remembers, for every probe seen so far, the end positions where
// it occurred. Lists grow in scan order, so the most recent occurrence is last.
type probeIndex struct {
	hist map[string][]int
}

func newProbeIndex() probeIndex {
	return probeIndex{hist: make(map[string][]int, 1<<10)}
}

func (p probeIndex) occurrences(probe []byte) []int { return p.hist[string(probe)] }

func (p probeIndex) add(probe []byte, end int) {
	key := string(probe)
	p.hist[key] = append(p.hist[key], end)
}

func (p probeIndex) reset() { clear(p.hist) }
