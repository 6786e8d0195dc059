// Package pattern normalises a repeat unit that is itself a repetition of a
// shorter unit.
package pattern

// Primes returns the primes <= n in ascending order.
func Primes(n int) []int {
	var out []int
	for c := 2; c <= n; c++ {
		prime := true
		for _, p := range out {
			if p*p > c {
				break
			}
			if c%p == 0 {
				prime = false
				break
			}
		}
		if prime {
			out = append(out, c)
		}
	}
	return out
}

// Reducer applies the first prime factor that splits a pattern into
// identical pieces. Only one factor is applied; the result is not
// necessarily the minimal period.
type Reducer struct {
	primes []int
}

// NewReducer builds a reducer for patterns up to maxPeriod.
func NewReducer(maxPeriod int) *Reducer {
	return &Reducer{primes: Primes(maxPeriod / 2)}
}

// Primes exposes the factor table.
func (r *Reducer) Primes() []int { return r.primes }

// Reduce returns the reduced pattern and the copy count scaled so that
// len(pattern)*copies is preserved.
func (r *Reducer) Reduce(p string, copies float64) (string, float64) {
	for _, n := range r.primes {
		if n == 2 {
			q, c := p, copies
			for len(q) >= 2 && len(q)%2 == 0 && q[:len(q)/2] == q[len(q)/2:] {
				q = q[:len(q)/2]
				c *= 2
			}
			if len(q) != len(p) {
				return q, c
			}
			continue
		}
		if len(p) < n || len(p)%n != 0 {
			continue
		}
		if chunk, ok := splitEqual(p, n); ok {
			return chunk, copies * float64(n)
		}
	}
	return p, copies
}

// splitEqual cuts p into n pieces of equal length and reports whether they
// are all identical.
func splitEqual(p string, n int) (string, bool) {
	size := len(p) / n
	head := p[:size]
	for off := size; off < len(p); off += size {
		if p[off:off+size] != head {
			return "", false
		}
	}
	return head, true
}
