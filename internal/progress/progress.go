// Package progress draws an optional bar over verified candidates.
package progress

import (
	"io"
	"sync"

	"github.com/cheggaaa/pb/v3"
)

// Bar is a progress bar whose total grows as sequences are scanned. A nil
// *Bar is valid and does nothing.
type Bar struct {
	mu  sync.Mutex
	bar *pb.ProgressBar
}

// New starts a bar writing to w, or returns nil when disabled.
func New(w io.Writer, enabled bool) *Bar {
	if !enabled {
		return nil
	}
	bar := pb.Full.New(0)
	bar.SetWriter(w)
	bar.Set(pb.Bytes, false)
	bar.Set("prefix", "verify ")
	bar.Start()
	return &Bar{bar: bar}
}

// AddTotal extends the expected number of candidates.
func (b *Bar) AddTotal(n int) {
	if b == nil || n == 0 {
		return
	}
	b.mu.Lock()
	b.bar.SetTotal(b.bar.Total() + int64(n))
	b.mu.Unlock()
}

// Increment marks one candidate verified. Safe for concurrent use.
func (b *Bar) Increment() {
	if b == nil {
		return
	}
	b.bar.Increment()
}

// Current is the number of candidates marked so far.
func (b *Bar) Current() int64 {
	if b == nil {
		return 0
	}
	return b.bar.Current()
}

// Finish stops the bar.
func (b *Bar) Finish() {
	if b == nil {
		return
	}
	b.bar.Finish()
}
