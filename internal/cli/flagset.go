package cli

import (
	"io"

	"github.com/spf13/pflag"
)

// NewFlagSet returns a clean FlagSet with ContinueOnError. pflag's own usage
// output is silenced; callers print PrintUsage themselves.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	fs.Usage = func() {}
	return fs
}
