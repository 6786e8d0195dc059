// Package align provides the global pairwise alignment primitive used to
// extend and score candidates, plus the column statistics computed on its output.
package align

import "fmt"

// Gap is the gap character in aligned output.
const Gap = '-'

// Aligner aligns a against b end to end. Both results have equal length.
// Implementations must be safe for concurrent use.
type Aligner interface {
	Align(a, b string) (alignedA, alignedB string, err error)
}

// Names of the built-in aligners.
const (
	NameWFA  = "wfa"
	NameEdit = "edit"
)

// ByName returns a built-in aligner.
func ByName(name string) (Aligner, error) {
	switch name {
	case NameWFA, "":
		return NewWFA(), nil
	case NameEdit:
		return Edit{}, nil
	}
	return nil, fmt.Errorf("unknown aligner %q (want %s or %s)", name, NameWFA, NameEdit)
}

// gapsAgainst aligns s against an empty string.
func gapsAgainst(s string) string {
	b := make([]byte, len(s))
	for i := range b {
		b[i] = Gap
	}
	return string(b)
}

// trivial handles empty inputs without calling a backend.
func trivial(a, b string) (string, string, bool) {
	switch {
	case a == "" && b == "":
		return "", "", true
	case a == "":
		return gapsAgainst(b), b, true
	case b == "":
		return a, gapsAgainst(a), true
	}
	return "", "", false
}

// Hamming counts differing columns of two aligned strings.
func Hamming(a, b string) int {
	n := min(len(a), len(b))
	d := len(a) + len(b) - 2*n
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			d++
		}
	}
	return d
}

// Score adds match for every column where both sides hold the same base and
// subtracts miss for every other column (substitutions and gaps).
func Score(a, b string, match, miss int) int {
	n := min(len(a), len(b))
	s := 0
	for i := 0; i < n; i++ {
		if a[i] == b[i] && a[i] != Gap {
			s += match
		} else {
			s -= miss
		}
	}
	return s
}
