// Package pretty draws a verified repeat's alignment as ASCII blocks for
// human-readable text output.
package pretty

import (
	"fmt"
	"strings"
)

// Options control the ASCII rendering.
type Options struct {
	// Alignment columns per block. If <=0, use default (60).
	Width int

	// Glyphs for the track between the two rows.
	MatchGlyph    string // default "|"
	MismatchGlyph string // default "."
	GapGlyph      string // default " "

	// Prepended to every line so the block reads as a comment in TSV.
	LinePrefix string
}

// DefaultOptions is the look used by --pretty.
var DefaultOptions = Options{
	Width:         60,
	MatchGlyph:    "|",
	MismatchGlyph: ".",
	GapGlyph:      " ",
	LinePrefix:    "# ",
}

const (
	defaultWidth = 60
	gap          = '-'
	labelIdeal   = "ideal"
	labelRegion  = "region"
)

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.MatchGlyph == "" {
		o.MatchGlyph = DefaultOptions.MatchGlyph
	}
	if o.MismatchGlyph == "" {
		o.MismatchGlyph = DefaultOptions.MismatchGlyph
	}
	if o.GapGlyph == "" {
		o.GapGlyph = DefaultOptions.GapGlyph
	}
	return o
}

func track(a, b string, o Options) string {
	var sb strings.Builder
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] == gap || b[i] == gap:
			sb.WriteString(o.GapGlyph)
		case a[i] == b[i]:
			sb.WriteString(o.MatchGlyph)
		default:
			sb.WriteString(o.MismatchGlyph)
		}
	}
	return sb.String()
}

func residues(s string) int { return len(s) - strings.Count(s, string(gap)) }

// RenderAlignment draws ideal (top) over region (bottom) in blocks of
// o.Width columns. Each region row is labelled with the 0-based sequence
// coordinate of its first column; start is the coordinate of region[0].
func RenderAlignment(ideal, region string, start int, o Options) string {
	o = o.withDefaults()
	n := min(len(ideal), len(region))
	if n == 0 {
		return ""
	}
	numw := len(fmt.Sprint(start + residues(region)))

	var sb strings.Builder
	pos := start
	for lo := 0; lo < n; lo += o.Width {
		hi := min(lo+o.Width, n)
		a, b := ideal[lo:hi], region[lo:hi]
		fmt.Fprintf(&sb, "%s%-6s %*s %s\n", o.LinePrefix, labelIdeal, numw, "", a)
		fmt.Fprintf(&sb, "%s%-6s %*s %s\n", o.LinePrefix, "", numw, "", track(a, b, o))
		fmt.Fprintf(&sb, "%s%-6s %*d %s\n", o.LinePrefix, labelRegion, numw, pos, b)
		pos += residues(b)
	}
	return sb.String()
}
