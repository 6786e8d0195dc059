// internal/cliutil/cliutil.go
package cliutil

import (
	"path/filepath"
	"strings"

	perr "trfind/internal/errors"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandInputs expands any globs among input paths and drops repeats while
// keeping first-seen order. "-" (stdin) may appear at most once.
func ExpandInputs(args []string) ([]string, error) {
	var out []string
	seen := make(map[string]bool, len(args))
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	for _, a := range args {
		if a == "-" || !hasGlobMeta(a) {
			add(a)
			continue
		}
		m, err := filepath.Glob(a)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeConfig, "bad glob %q", a)
		}
		if len(m) == 0 {
			return nil, perr.Newf(perr.ErrorCodeInput, "no input matched %q", a)
		}
		for _, p := range m {
			add(p)
		}
	}
	return out, nil
}
