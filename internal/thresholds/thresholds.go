// Package thresholds exposes the calibrated significance tables and the
// small threshold functions the candidate detector is built on.
package thresholds

import (
	"fmt"
	"math"
)

// Supported per-base match probabilities.
const (
	Match80 = 0.80
	Match75 = 0.75
)

// MaxPeriod is the largest period both tables cover.
const MaxPeriod = len(sumOfHeads80)

// Table is a 1-indexed view of one sum-of-heads table.
type Table struct {
	prob float64
	data []int32
}

// ForProbability returns the table calibrated for p.
func ForProbability(p float64) (Table, error) {
	switch p {
	case Match80:
		return Table{prob: p, data: sumOfHeads80[:]}, nil
	case Match75:
		return Table{prob: p, data: sumOfHeads75[:]}, nil
	}
	return Table{}, fmt.Errorf("unsupported match probability %v (want %v or %v)", p, Match80, Match75)
}

// Probability reports which model the table was built for.
func (t Table) Probability() float64 { return t.prob }

// Len is the largest period the table can answer for.
func (t Table) Len() int { return len(t.data) }

// SumOfHeads returns the minimum evidence needed at period d (1-indexed).
// Periods outside the table are never significant.
func (t Table) SumOfHeads(d int) int {
	if d < 1 || d > len(t.data) {
		return math.MaxInt
	}
	return int(t.data[d-1])
}

// ApparentSize is the minimum apparent coverage required at period d.
func ApparentSize(d int) int {
	switch {
	case d > 10:
		return int(math.Floor(float64(d) * 0.9))
	case d > 5:
		return int(math.Floor(float64(d) * 0.85))
	default:
		return int(math.Floor(float64(d) * 0.8))
	}
}

// MaxDelta is the expected worst-case period drift caused by indels over d
// bases at the given indel rate.
func MaxDelta(indel float64, d int) int {
	return int(math.Floor(2.3 * math.Sqrt(indel*float64(d))))
}
