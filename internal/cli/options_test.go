package cli

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"trfind/internal/config"
	perr "trfind/internal/errors"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	return ParseArgs(NewFlagSet("trfind"), argv, config.Default())
}

func TestParseArgsDefaults(t *testing.T) {
	o, err := parse(t, "genome.fa")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if !reflect.DeepEqual(o.SeqFiles, []string{"genome.fa"}) {
		t.Fatalf("SeqFiles = %v", o.SeqFiles)
	}
	if !reflect.DeepEqual(o.Config, config.Default()) {
		t.Fatalf("config = %+v", o.Config)
	}
	if !o.Header || o.NoMatchExitCode != 1 || o.Progress || o.Quiet {
		t.Fatalf("output flags = %+v", o)
	}
}

func TestParseArgsOverrides(t *testing.T) {
	o, err := parse(t,
		"-m", "50", "-k", "4", "-k", "6", "--match-probability", "0.75",
		"--min-score", "50", "--aligner", "EDIT", "-t", "3",
		"-o", "jsonl", "--no-header", "--no-match-exit-code", "0",
		"-q", "-s", "a.fa", "b.fa")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if o.MaxPatternSize != 50 || !reflect.DeepEqual(o.ProbeLengths, []int{4, 6}) || o.MatchProbability != 0.75 {
		t.Fatalf("detection = %+v", o.Config)
	}
	if o.MinScore != 50 || o.Aligner != "edit" || o.Threads != 3 || o.Output != "jsonl" {
		t.Fatalf("config = %+v", o.Config)
	}
	if o.Header || o.NoMatchExitCode != 0 || o.LogLevel != "error" {
		t.Fatalf("options = %+v", o)
	}
	if !reflect.DeepEqual(o.SeqFiles, []string{"a.fa", "b.fa"}) {
		t.Fatalf("SeqFiles = %v", o.SeqFiles)
	}
}

func TestParseArgsCommaProbeLengths(t *testing.T) {
	o, err := parse(t, "--probe-length", "3,4,5", "-")
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if !reflect.DeepEqual(o.ProbeLengths, []int{3, 4, 5}) || o.SeqFiles[0] != "-" {
		t.Fatalf("options = %+v", o)
	}
}

func TestParseArgsBaseFromEnvironment(t *testing.T) {
	base := config.Default()
	base.MaxPatternSize = 80
	o, err := ParseArgs(NewFlagSet("trfind"), []string{"x.fa"}, base)
	if err != nil || o.MaxPatternSize != 80 {
		t.Fatalf("base not honoured: %v %+v", err, o.Config)
	}
	o, err = ParseArgs(NewFlagSet("trfind"), []string{"-m", "10", "x.fa"}, base)
	if err != nil || o.MaxPatternSize != 10 {
		t.Fatalf("flag did not win: %v %+v", err, o.Config)
	}
}

func TestParseArgsGlobs(t *testing.T) {
	dir := t.TempDir()
	for _, n := range []string{"b.fa", "a.fa", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, n), []byte(">x\nA\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	o, err := parse(t, filepath.Join(dir, "*.fa"))
	if err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	want := []string{filepath.Join(dir, "a.fa"), filepath.Join(dir, "b.fa")}
	if !reflect.DeepEqual(o.SeqFiles, want) {
		t.Fatalf("SeqFiles = %v", o.SeqFiles)
	}
}

func TestParseArgsErrors(t *testing.T) {
	cases := []struct {
		argv []string
		want string
	}{
		{nil, "no input"},
		{[]string{"-o", "xml", "x.fa"}, "--output"},
		{[]string{"--aligner", "blast", "x.fa"}, "--aligner"},
		{[]string{"-m", "0", "x.fa"}, "--max-pattern-size"},
		{[]string{"--match-probability", "0.9", "x.fa"}, "--match-probability"},
		{[]string{"--bogus", "x.fa"}, "bogus"},
	}
	for _, c := range cases {
		_, err := parse(t, c.argv...)
		if !perr.IsCode(err, perr.ErrorCodeConfig) {
			t.Fatalf("%v: err = %v", c.argv, err)
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Fatalf("%v: %q does not mention %q", c.argv, err, c.want)
		}
	}
}

func TestParseArgsHelpVersionExamples(t *testing.T) {
	if _, err := parse(t, "-h"); !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("help: %v", err)
	}
	if _, err := parse(t, "--examples"); !errors.Is(err, ErrPrintedAndExitOK) {
		t.Fatalf("examples: %v", err)
	}
	o, err := parse(t, "-v")
	if err != nil || !o.Version {
		t.Fatalf("version: %v %+v", err, o)
	}
}

func TestUsageListsEveryFlag(t *testing.T) {
	fs := NewFlagSet("trfind")
	_, _ = ParseArgs(fs, []string{"-h"}, config.Default())
	var b strings.Builder
	PrintUsage(&b, "trfind", fs)
	usage := b.String()
	fs.VisitAll(func(f *pflag.Flag) {
		if !strings.Contains(usage, "--"+f.Name) {
			t.Errorf("usage does not mention --%s", f.Name)
		}
	})
}
