// internal/cli/options.go
package cli

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"

	"trfind/internal/cliutil"
	"trfind/internal/config"
	perr "trfind/internal/errors"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// Options holds all CLI flags and arguments.
type Options struct {
	config.Config

	// Input
	SeqFiles []string

	// Output
	Header          bool // true unless --no-header
	NoMatchExitCode int
	Pretty          bool
	Progress        bool

	// Misc
	Quiet    bool
	Version  bool
	Examples bool
}

type registered struct {
	noHeader bool
	seqs     []string
}

// register wires every flag onto fs with defaults taken from base.
func register(fs *pflag.FlagSet, o *Options, base config.Config) *registered {
	r := &registered{}
	o.Config = base

	// Input
	fs.StringArrayVarP(&r.seqs, "sequences", "s", nil, "FASTA file(s) (repeatable) or '-' for STDIN")

	// Detection
	fs.Float64Var(&o.MatchProbability, "match-probability", base.MatchProbability, "per-base match probability: 0.8 | 0.75")
	fs.Float64Var(&o.IndelProbability, "indel-probability", base.IndelProbability, "per-base indel probability")
	fs.IntVarP(&o.MaxPatternSize, "max-pattern-size", "m", base.MaxPatternSize, "largest period searched")
	fs.IntSliceVarP(&o.ProbeLengths, "probe-length", "k", base.ProbeLengths, "probe (seed) length; repeat or comma-separate for several passes")

	// Scoring
	fs.IntVar(&o.MinScore, "min-score", base.MinScore, "minimum alignment score to report")
	fs.IntVar(&o.MatchScore, "match-score", base.MatchScore, "score added per matching column")
	fs.IntVar(&o.MissScore, "miss-score", base.MissScore, "score subtracted per mismatch or gap column")
	fs.StringVar(&o.Aligner, "aligner", base.Aligner, "alignment backend: wfa | edit")

	// Performance
	fs.IntVarP(&o.Threads, "threads", "t", base.Threads, "verification workers (0=all CPUs)")

	// Output
	fs.StringVarP(&o.Output, "output", "o", base.Output, "output: text | json | jsonl | fasta")
	fs.BoolVar(&r.noHeader, "no-header", false, "suppress header line")
	fs.BoolVar(&o.Pretty, "pretty", false, "text output: draw each alignment under its row")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no repeats are reported")
	fs.BoolVar(&o.Progress, "progress", false, "show a progress bar on stderr")

	// Misc
	fs.StringVar(&o.LogLevel, "log-level", base.LogLevel, "log level: trace | debug | info | warn | error")
	fs.StringVar(&o.LogFormat, "log-format", base.LogFormat, "log format: console | json")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&o.Version, "version", "v", false, "print version and exit")
	fs.BoolVar(&o.Examples, "examples", false, "print usage examples and exit")
	return r
}

// ParseArgs registers and parses all flags on fs. Positional arguments are
// treated as additional FASTA inputs and globs among them are expanded.
func ParseArgs(fs *pflag.FlagSet, argv []string, base config.Config) (Options, error) {
	var o Options
	r := register(fs, &o, base)

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return o, err
		}
		return o, perr.Wrap(err, perr.ErrorCodeConfig, "parse flags")
	}
	if o.Examples {
		return o, ErrPrintedAndExitOK
	}
	if o.Version {
		return o, nil
	}

	o.Header = !r.noHeader
	o.Aligner = strings.ToLower(o.Aligner)
	o.Output = strings.ToLower(o.Output)
	if o.Quiet {
		o.LogLevel = "error"
	}

	files, err := cliutil.ExpandInputs(append(r.seqs, fs.Args()...))
	if err != nil {
		return o, err
	}
	o.SeqFiles = files
	return o, Validate(o)
}

// Validate checks the parsed options.
func Validate(o Options) error {
	if len(o.SeqFiles) == 0 {
		return perr.New(perr.ErrorCodeConfig, "no input: give FASTA files as arguments or with --sequences (use '-' for STDIN)")
	}
	return o.Config.Validate()
}
