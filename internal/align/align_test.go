package align

import (
	"strings"
	"testing"
)

func ungap(s string) string { return strings.ReplaceAll(s, string(Gap), "") }

func TestEditAlignDeterministic(t *testing.T) {
	ideal := strings.Repeat("AC", 14)
	region := strings.Repeat("AC", 13)
	a, b, err := Edit{}.Align(ideal, region)
	if err != nil {
		t.Fatalf("align: %v", err)
	}
	if a != ideal || b != "--"+region {
		t.Fatalf("got (%q,%q)", a, b)
	}
	if s := Score(a, b, 2, 4); s != 44 {
		t.Fatalf("score=%d want 44", s)
	}
}

func TestEditAlignSubstitutionAndIndel(t *testing.T) {
	a, b, _ := Edit{}.Align("ATG", "ATC")
	if a != "ATG" || b != "ATC" || Hamming(a, b) != 1 {
		t.Fatalf("substitution: (%q,%q)", a, b)
	}
	a, b, _ = Edit{}.Align("ATGC", "AGC")
	if a != "ATGC" || b != "A-GC" {
		t.Fatalf("deletion: (%q,%q)", a, b)
	}
	a, b, _ = Edit{}.Align("AGC", "ATGC")
	if a != "A-GC" || b != "ATGC" {
		t.Fatalf("insertion: (%q,%q)", a, b)
	}
}

func TestEmptyInputs(t *testing.T) {
	for _, al := range []Aligner{Edit{}, NewWFA()} {
		a, b, err := al.Align("", "ACG")
		if err != nil || a != "---" || b != "ACG" {
			t.Fatalf("%T: (%q,%q,%v)", al, a, b, err)
		}
		a, b, err = al.Align("AC", "")
		if err != nil || a != "AC" || b != "--" {
			t.Fatalf("%T: (%q,%q,%v)", al, a, b, err)
		}
	}
}

func TestAlignersKeepInputs(t *testing.T) {
	pairs := [][2]string{
		{"ATGATGATG", "ATGATCATG"},
		{"ATGATGATG", "ATGAATGATG"},
		{strings.Repeat("GATTACA", 4), "GATTACAGATTCAGATTACAGATTACA"},
		{"ACGT", "TTTTTTTT"},
		{"AC", "GT"},
		{"GTGTTTGG", "ACACACAC"},
	}
	for _, al := range []Aligner{Edit{}, NewWFA()} {
		for _, p := range pairs {
			a, b, err := al.Align(p[0], p[1])
			if err != nil {
				t.Fatalf("%T %v: %v", al, p, err)
			}
			if len(a) != len(b) {
				t.Fatalf("%T %v: unequal lengths %q %q", al, p, a, b)
			}
			if ungap(a) != p[0] || ungap(b) != p[1] {
				t.Fatalf("%T %v: inputs not preserved: %q %q", al, p, a, b)
			}
		}
	}
}

func TestIdenticalStringsAlignWithoutGaps(t *testing.T) {
	s := strings.Repeat("ATG", 9)
	for _, al := range []Aligner{Edit{}, NewWFA()} {
		a, b, err := al.Align(s, s)
		if err != nil || a != s || b != s {
			t.Fatalf("%T: (%q,%q,%v)", al, a, b, err)
		}
		if got := Score(a, b, 2, 4); got != 2*len(s) {
			t.Fatalf("%T: score %d want %d", al, got, 2*len(s))
		}
		if Hamming(a, b) != 0 {
			t.Fatalf("%T: hamming != 0", al)
		}
	}
}

func TestScoreCountsGapsAsMisses(t *testing.T) {
	if s := Score("A-GT", "ACGA", 2, 4); s != 2-4+2-4 {
		t.Fatalf("score=%d", s)
	}
	if s := Score("--", "--", 2, 4); s != -8 {
		t.Fatalf("double gap must count as miss, got %d", s)
	}
}

func TestByName(t *testing.T) {
	if al, err := ByName("edit"); err != nil || al == nil {
		t.Fatalf("edit: %v", err)
	}
	if _, ok := mustAligner(t, "wfa").(*WFA); !ok {
		t.Fatalf("wfa: wrong type")
	}
	if _, err := ByName("sw"); err == nil {
		t.Fatalf("unknown aligner accepted")
	}
}

func mustAligner(t *testing.T, name string) Aligner {
	t.Helper()
	al, err := ByName(name)
	if err != nil {
		t.Fatalf("ByName(%q): %v", name, err)
	}
	return al
}
