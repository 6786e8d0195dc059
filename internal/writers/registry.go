// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"slices"

	"trfind/internal/verify"
)

// Options are the format-independent writer switches.
type Options struct {
	Header bool // text only
	Pretty bool // text only: draw each alignment under its row
}

// Args is what every format handler receives.
type Args struct {
	Options
	In <-chan verify.Report
}

// Handler drains a.In into w.
type Handler func(w io.Writer, a Args) error

// Writer registry (format → handler). Register in init() blocks.
var handlers = map[string]Handler{}

// Register installs fn for format (idempotent last-wins).
func Register(format string, fn Handler) { handlers[format] = fn }

// Known reports whether a handler exists for format.
func Known(format string) bool {
	_, ok := handlers[format]
	return ok
}

// Registered lists the registered formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(handlers))
	for f := range handlers {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// Write dispatches to the handler for format.
func Write(format string, w io.Writer, a Args) error {
	fn, ok := handlers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, a)
}
