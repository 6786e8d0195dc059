package align

import (
	"fmt"
	"sync"

	"github.com/shenwei356/wfa"
)

// WFA is a gap-affine wavefront global aligner. wfa.Aligner objects are not
// goroutine-safe, so each call borrows one from a pool.
type WFA struct {
	pool *sync.Pool
}

// NewWFA returns a WFA aligner using the library's default penalties.
func NewWFA() *WFA {
	return NewWFAWithPenalties(wfa.DefaultPenalties)
}

// NewWFAWithPenalties returns a WFA aligner with custom penalties.
func NewWFAWithPenalties(p *wfa.Penalties) *WFA {
	opt := &wfa.Options{GlobalAlignment: true}
	return &WFA{pool: &sync.Pool{New: func() any {
		return wfa.New(p, opt)
	}}}
}

// Align returns the full global alignment of a and b. A panic inside the
// backend is returned as an error and the aligner is not reused.
func (w *WFA) Align(a, b string) (x, y string, err error) {
	if x, y, ok := trivial(a, b); ok {
		return x, y, nil
	}
	algn := w.pool.Get().(*wfa.Aligner)
	defer func() {
		if r := recover(); r != nil {
			x, y, err = "", "", fmt.Errorf("wfa: %v", r)
			return
		}
		w.pool.Put(algn)
	}()

	q, t := []byte(a), []byte(b)
	cigar, err := algn.Align(q, t)
	if err != nil {
		return "", "", err
	}
	defer wfa.RecycleAlignmentResult(cigar)

	Q, A, T := cigar.AlignmentText(&q, &t, false)
	x, y = string(*Q), string(*T)
	wfa.RecycleAlignmentText(Q, A, T)
	return x, y, nil
}
