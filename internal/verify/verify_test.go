package verify

import (
	"errors"
	"strings"
	"testing"

	"trfind/internal/align"
	perr "trfind/internal/errors"
	"trfind/internal/pattern"
	"trfind/internal/repeat"
)

var defaultCfg = Config{MinScore: 30, MatchScore: 2, MissScore: 4}

func newVerifier() *Verifier {
	return New(defaultCfg, align.Edit{}, pattern.NewReducer(25))
}

func candidate(first, last, unit int, copies float64) *repeat.TandemRepeat {
	tr := repeat.New(first, last, unit, 0)
	tr.First = first
	tr.NumCopies = copies
	return tr
}

func TestVerifyDinucleotide(t *testing.T) {
	seq := []byte(strings.Repeat("AC", 13))
	tr := candidate(0, 25, 14, 2)
	rep, ok, err := newVerifier().Verify(seq, tr)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatalf("rejected: %+v", rep)
	}
	if rep.Start != 0 || rep.End != 25 || rep.Period != 14 || rep.NumCopies != 14 || rep.Size() != 26 {
		t.Fatalf("report = %+v", rep)
	}
	if rep.Pattern != "AC" || rep.Ideal != strings.Repeat("AC", 14) || rep.Region != string(seq) {
		t.Fatalf("strings = %q %q %q", rep.Pattern, rep.Ideal, rep.Region)
	}
	if rep.AlignedRegion != "--"+string(seq) || rep.Score != 44 {
		t.Fatalf("alignment = %q score %d", rep.AlignedRegion, rep.Score)
	}
	if tr.Pattern != "AC" || tr.NumCopies != 14 || tr.QualityScore != 44 {
		t.Fatalf("candidate not updated: %+v", *tr)
	}
}

func TestVerifyExtendsAndReduces(t *testing.T) {
	seq := []byte(strings.Repeat("GATTACA", 6))
	rep, ok, err := newVerifier().Verify(seq, candidate(0, 41, 21, 2))
	if err != nil || !ok {
		t.Fatalf("Verify: ok=%v err=%v", ok, err)
	}
	if rep.Pattern != "GATTACA" || rep.NumCopies != 6 || rep.Score != 84 {
		t.Fatalf("report = %+v", rep)
	}
	if rep.AlignedIdeal != string(seq) || rep.AlignedRegion != string(seq) {
		t.Fatalf("perfect repeat must align without gaps")
	}
}

func TestVerifyWithFlanks(t *testing.T) {
	left := "GCTAAAGACAATTACATAACATACACGTCAGCACGAAACT"
	right := "TGTTGGCCCAGTGTGAATCGCTTAAGGGTTAAGTAAGTGT"
	seq := []byte(left + strings.Repeat("ATG", 12) + right)
	rep, ok, err := newVerifier().Verify(seq, candidate(40, 75, 18, 2))
	if err != nil || !ok {
		t.Fatalf("Verify: ok=%v err=%v", ok, err)
	}
	// halving stops at 9 bp, so the unit is three ATG copies
	if rep.Start != 40 || rep.End != 75 || rep.Pattern != "ATGATGATG" || rep.NumCopies != 4 || rep.Score != 72 {
		t.Fatalf("report = %+v", rep)
	}
}

func TestVerifyRejectsShortRegion(t *testing.T) {
	seq := []byte("CCGTAATGCCTTTCCCTAACAGAGTTTTTC" + strings.Repeat("ATGC", 4) + "GAACTCGTGTTGTCGAGCGACGGAATTAGA")
	rep, ok, err := newVerifier().Verify(seq, candidate(30, 45, 8, 2))
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatalf("short region accepted: %+v", rep)
	}
}

func TestAcceptGate(t *testing.T) {
	v := newVerifier()
	mk := func(size int, pat string, copies float64, score int) Report {
		return Report{Start: 0, End: size - 1, Pattern: pat, NumCopies: copies, Score: score}
	}
	cases := []struct {
		name string
		r    Report
		want bool
	}{
		{"too short", mk(24, "AC", 12, 100), false},
		{"low score", mk(40, "AC", 20, 29), false},
		{"four copies no margin", mk(40, "ACGT", 4, 30), true},
		{"three copies needs +2", mk(40, "ACGT", 3, 31), false},
		{"three copies with +2", mk(40, "ACGT", 3, 32), true},
		{"two copies short unit", mk(40, "ACGT", 2.5, 100), false},
		{"two copies long unit needs +10", mk(40, "ACGTACGTACGA", 2, 39), false},
		{"two copies long unit with +10", mk(40, "ACGTACGTACGA", 2, 40), true},
	}
	for _, c := range cases {
		if got := v.Accept(c.r); got != c.want {
			t.Fatalf("%s: Accept=%v want %v", c.name, got, c.want)
		}
	}
}

type failingAligner struct{}

func (failingAligner) Align(string, string) (string, string, error) {
	return "", "", errors.New("backend crashed")
}

func TestVerifyAlignerFailure(t *testing.T) {
	v := New(defaultCfg, failingAligner{}, pattern.NewReducer(25))
	tr := candidate(0, 25, 14, 2)
	before := *tr
	_, ok, err := v.Verify([]byte(strings.Repeat("AC", 13)), tr)
	if ok || !perr.IsCode(err, perr.ErrorCodeAlign) {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if *tr != before {
		t.Fatalf("candidate changed on failure:\n got %+v\nwant %+v", *tr, before)
	}
}

// chunkFailingAligner fails only when aligning a single unit.
type chunkFailingAligner struct{ unit int }

func (c chunkFailingAligner) Align(a, b string) (string, string, error) {
	if len(a) == c.unit {
		return "", "", errors.New("backend crashed")
	}
	return align.Edit{}.Align(a, b)
}

func TestVerifyExtensionFailureNamesChunk(t *testing.T) {
	v := New(defaultCfg, chunkFailingAligner{unit: 2}, pattern.NewReducer(25))
	tr := candidate(0, 25, 14, 2)
	before := *tr
	_, _, err := v.Verify([]byte(strings.Repeat("AC", 13)+"GGGG"), tr)
	if !perr.IsCode(err, perr.ErrorCodeAlign) || !strings.Contains(err.Error(), "[26,27]") {
		t.Fatalf("err = %v", err)
	}
	if *tr != before {
		t.Fatalf("candidate changed on failure: %+v", *tr)
	}
}

type panickingAligner struct{}

func (panickingAligner) Align(string, string) (string, string, error) {
	panic("slice bounds out of range")
}

func TestVerifyAlignerPanicBecomesError(t *testing.T) {
	v := New(defaultCfg, panickingAligner{}, pattern.NewReducer(25))
	tr := candidate(0, 25, 14, 2)
	before := *tr
	_, ok, err := v.Verify([]byte(strings.Repeat("AC", 13)), tr)
	if ok || !perr.IsCode(err, perr.ErrorCodeAlign) || !strings.Contains(err.Error(), "slice bounds") {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if *tr != before {
		t.Fatalf("candidate changed on panic: %+v", *tr)
	}
}

func TestVerifyWithWFA(t *testing.T) {
	v := New(defaultCfg, align.NewWFA(), pattern.NewReducer(25))
	seq := []byte("GTGTTTGG" + strings.Repeat("AC", 12) + "GTGTTTGG")
	tr := candidate(8, 31, 12, 2)
	rep, _, err := v.Verify(seq, tr)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if len(rep.AlignedIdeal) != len(rep.AlignedRegion) {
		t.Fatalf("unequal alignment: %q %q", rep.AlignedIdeal, rep.AlignedRegion)
	}
	if strings.ReplaceAll(rep.AlignedIdeal, "-", "") != rep.Ideal || strings.ReplaceAll(rep.AlignedRegion, "-", "") != rep.Region {
		t.Fatalf("alignment does not cover inputs: %+v", rep)
	}
}
