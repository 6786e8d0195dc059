package engine

import (
	"context"

	"trfind/internal/repeat"
	"trfind/internal/thresholds"
)

// cancelCheckEvery bounds how many positions are scanned between context checks.
const cancelCheckEvery = 1 << 16

// scanner owns the mutable state of one detection pass.
type scanner struct {
	probes  probeIndex
	windows distanceWindows
}

func newScanner() *scanner {
	return &scanner{probes: newProbeIndex(), windows: make(distanceWindows, 64)}
}

func (s *scanner) reset() {
	s.probes.reset()
	s.windows.reset()
}

// detect scans seq once with probes of length k and returns the accepted
// raw candidates grouped by apparent size and end position.
func (s *scanner) detect(ctx context.Context, seq []byte, k int, p Params) (*Groups, error) {
	out := newGroups()
	for i := k - 1; i < len(seq); i++ {
		if (i-k+1)%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		probe := seq[i-k+1 : i+1]
		occ := s.probes.occurrences(probe)
		for u := len(occ) - 1; u >= 0; u-- {
			j := occ[u]
			d := i - j
			if d > p.MaxPeriod {
				break
			}
			total, leftMost := s.windowStats(d, i, k, p.IndelProbability)
			apparent := min(d, i-leftMost+1)
			if total >= p.Table.SumOfHeads(d) && apparent >= thresholds.ApparentSize(d) {
				out.add(apparent, i, repeat.New(j+1, i, apparent, total))
			}
		}
		s.probes.add(probe, i)
	}
	return out, nil
}

// windowStats registers end i under period d and sums the evidence of d and
// its indel-tolerant neighbours. leftMost is the leftmost start of any probe
// still inside one of the inspected windows.
func (s *scanner) windowStats(d, i, k int, indel float64) (total, leftMost int) {
	lo := i - d + 1
	s.windows.register(d, i)
	own, _ := s.windows.evict(d, lo)
	total = k * len(own)
	leftMost = own[0] - k + 1

	maxDelta := thresholds.MaxDelta(indel, d)
	for delta := 1; delta <= maxDelta; delta++ {
		for _, dd := range [2]int{d - delta, d + delta} {
			if dd <= 0 {
				continue
			}
			live, ok := s.windows.evict(dd, lo)
			if !ok {
				continue
			}
			total += k * len(live)
			if len(live) > 0 {
				leftMost = min(leftMost, live[0]-k+1)
			}
		}
	}
	return total, leftMost
}
