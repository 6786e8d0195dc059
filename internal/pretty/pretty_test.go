package pretty

import (
	"strings"
	"testing"
)

func TestDefaultOptions_Stable(t *testing.T) {
	d := DefaultOptions
	if d.MatchGlyph != "|" || d.MismatchGlyph != "." || d.GapGlyph != " " || d.LinePrefix != "# " {
		t.Fatalf("DefaultOptions visual defaults changed: %+v", d)
	}
}

func TestRenderAlignmentBlocks(t *testing.T) {
	got := RenderAlignment("ACGT-A", "AC-TTA", 10, Options{Width: 4, LinePrefix: "# "})
	want := strings.Join([]string{
		"# ideal" + strings.Repeat(" ", 5) + "ACGT",
		"#" + strings.Repeat(" ", 11) + "|| |",
		"# region 10 AC-T",
		"# ideal" + strings.Repeat(" ", 5) + "-A",
		"#" + strings.Repeat(" ", 12) + "|",
		"# region 13 TA",
	}, "\n") + "\n"
	if got != want {
		t.Fatalf("render:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderAlignmentMismatch(t *testing.T) {
	got := RenderAlignment("ACGT", "AGGT", 0, Options{})
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %q", lines)
	}
	if !strings.HasSuffix(lines[1], "|.||") {
		t.Fatalf("track = %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "region 0 AGGT") {
		t.Fatalf("region row = %q", lines[2])
	}
}

func TestRenderAlignmentEmpty(t *testing.T) {
	if s := RenderAlignment("", "", 5, DefaultOptions); s != "" {
		t.Fatalf("empty = %q", s)
	}
}
