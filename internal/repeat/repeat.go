// Package repeat holds the tandem-repeat record shared by the engine, the
// verifier and the writers.
package repeat

import "fmt"

// TandemRepeat is one candidate region. Coordinates are 0-based and inclusive.
type TandemRepeat struct {
	SequenceName     string
	First            int
	Last             int
	PatternBeginning int
	UnitLength       int
	SumOfHeads       int
	NumCopies        float64
	Pattern          string
	QualityScore     int16
}

// New builds a detector candidate covering [first,last] with the given unit.
func New(first, last, unit, sumOfHeads int) *TandemRepeat {
	return &TandemRepeat{
		First:            first,
		Last:             last,
		PatternBeginning: last - unit + 1,
		UnitLength:       unit,
		SumOfHeads:       sumOfHeads,
	}
}

// Size is the inclusive length of the region.
func (t *TandemRepeat) Size() int { return t.Last - t.First + 1 }

// Overlaps reports whether the closed intervals [a1,a2] and [b1,b2] share a position.
func Overlaps(a1, a2, b1, b2 int) bool { return b1 <= a2 && a1 <= b2 }

func (t *TandemRepeat) String() string {
	return fmt.Sprintf("%s[%d,%d] unit=%d copies=%.1f", t.SequenceName, t.First, t.Last, t.UnitLength, t.NumCopies)
}
