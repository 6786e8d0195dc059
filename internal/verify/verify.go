// Package verify extends candidates with the alignment primitive, scores
// them against an ideal repeat and decides whether they are reported.
package verify

import (
	"fmt"
	"strings"

	"trfind/internal/align"
	perr "trfind/internal/errors"
	"trfind/internal/pattern"
	"trfind/internal/repeat"
)

const (
	// MinRegionLength is the shortest region ever reported.
	MinRegionLength = 25
	// MinUnitForFewCopies lets units this long through with fewer than 3 copies.
	MinUnitForFewCopies = 12
	// maxChunkMismatch is the Hamming fraction tolerated when extending by one unit.
	maxChunkMismatch = 0.4
)

// Config holds the scoring parameters.
type Config struct {
	MinScore   int
	MatchScore int
	MissScore  int
}

// Report is one verified repeat. Start and End are 0-based and inclusive.
type Report struct {
	SequenceName  string
	Start         int
	End           int
	Period        int
	NumCopies     float64
	Pattern       string
	Region        string
	Ideal         string
	AlignedIdeal  string
	AlignedRegion string
	Score         int
}

// Size is the region length.
func (r Report) Size() int { return r.End - r.Start + 1 }

// Verifier is safe for concurrent use when its Aligner is.
type Verifier struct {
	cfg     Config
	aligner align.Aligner
	reducer *pattern.Reducer
}

func New(cfg Config, al align.Aligner, red *pattern.Reducer) *Verifier {
	return &Verifier{cfg: cfg, aligner: al, reducer: red}
}

// Verify extends tr in both directions, aligns it against its ideal repeat
// and applies the reporting gate. On success tr is updated in place; on an
// aligner failure tr is left untouched and err is coded ErrorCodeAlign. ok is
// false when the candidate is rejected.
func (v *Verifier) Verify(seq []byte, tr *repeat.TandemRepeat) (rep Report, ok bool, err error) {
	unit, copies := v.reducer.Reduce(string(seq[tr.PatternBeginning:tr.Last+1]), tr.NumCopies)
	L := len(unit)
	first, last := tr.First, tr.Last

	// left
	beg, grown := first-L, false
	for beg >= 0 {
		accept, err := v.fits(unit, seq, beg, beg+L)
		if err != nil {
			return rep, false, err
		}
		if !accept {
			break
		}
		copies++
		beg -= L
		grown = true
	}
	if grown {
		first = beg + L
	}

	// right
	end, grown := last+1, false
	for end+L <= len(seq) {
		accept, err := v.fits(unit, seq, end, end+L)
		if err != nil {
			return rep, false, err
		}
		if !accept {
			break
		}
		copies++
		end += L
		grown = true
	}
	if grown {
		last = end - 1
	}

	var ideal strings.Builder
	ideal.Grow(L * (int(copies) + 1))
	for i := 0; float64(i) < copies; i++ {
		ideal.WriteString(unit)
	}
	region := string(seq[first : last+1])
	ai, ar, err := v.align(ideal.String(), region)
	if err != nil {
		return rep, false, perr.Wrapf(err, perr.ErrorCodeAlign, "align ideal repeat at [%d,%d]", first, last)
	}
	score := align.Score(ai, ar, v.cfg.MatchScore, v.cfg.MissScore)

	tr.First, tr.Last, tr.NumCopies, tr.Pattern = first, last, copies, unit
	tr.QualityScore = clampInt16(score)

	rep = Report{
		SequenceName:  tr.SequenceName,
		Start:         first,
		End:           last,
		Period:        tr.UnitLength,
		NumCopies:     copies,
		Pattern:       unit,
		Region:        region,
		Ideal:         ideal.String(),
		AlignedIdeal:  ai,
		AlignedRegion: ar,
		Score:         score,
	}
	return rep, v.Accept(rep), nil
}

// Accept is the reporting gate.
func (v *Verifier) Accept(r Report) bool {
	floor := v.cfg.MinScore
	switch {
	case r.Size() < MinRegionLength, r.Score < floor:
		return false
	case r.NumCopies < 3 && len(r.Pattern) < MinUnitForFewCopies:
		return false
	case r.NumCopies < 3:
		return r.Score >= floor+10
	case r.NumCopies < 4:
		return r.Score >= floor+2
	}
	return true
}

// fits reports whether seq[from:to] is close enough to one copy of unit.
func (v *Verifier) fits(unit string, seq []byte, from, to int) (bool, error) {
	a, b, err := v.align(unit, string(seq[from:to]))
	if err != nil {
		return false, perr.Wrapf(err, perr.ErrorCodeAlign, "align extension chunk at [%d,%d]", from, to-1)
	}
	return float64(align.Hamming(a, b)) <= maxChunkMismatch*float64(len(a)), nil
}

// align calls the aligner, turning a panic into an error.
func (v *Verifier) align(a, b string) (x, y string, err error) {
	defer func() {
		if r := recover(); r != nil {
			x, y, err = "", "", fmt.Errorf("aligner panic: %v", r)
		}
	}()
	return v.aligner.Align(a, b)
}

func clampInt16(s int) int16 {
	switch {
	case s > 1<<15-1:
		return 1<<15 - 1
	case s < -1<<15:
		return -1 << 15
	}
	return int16(s)
}
