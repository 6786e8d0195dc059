// internal/cli/usage.go
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"trfind/internal/version"
)

// PrintUsage writes the help text for the flags registered on fs to out.
// name is the program name fs was created with.
func PrintUsage(out io.Writer, name string, fs *pflag.FlagSet) {
	def := func(name string) string {
		if f := fs.Lookup(name); f != nil {
			return f.DefValue
		}
		return ""
	}

	fmt.Fprintf(out, "%s: statistical tandem-repeat finder\n\n", name)
	fmt.Fprintf(out, "Version: %s\n\n", version.Version)
	fmt.Fprintf(out, "Usage: %s [flags] <fasta>...\n", name)

	fmt.Fprintln(out, "\nInput:")
	fmt.Fprintln(out, "  -s, --sequences file          FASTA file(s) (repeatable, .gz ok) or '-' for STDIN")

	fmt.Fprintln(out, "\nDetection:")
	fmt.Fprintf(out, "      --match-probability float  Per-base match probability: 0.8 | 0.75 [%s]\n", def("match-probability"))
	fmt.Fprintf(out, "      --indel-probability float  Per-base indel probability [%s]\n", def("indel-probability"))
	fmt.Fprintf(out, "  -m, --max-pattern-size int     Largest period searched [%s]\n", def("max-pattern-size"))
	fmt.Fprintf(out, "  -k, --probe-length ints        Probe length(s), one pass each [%s]\n", def("probe-length"))

	fmt.Fprintln(out, "\nScoring:")
	fmt.Fprintf(out, "      --min-score int            Minimum alignment score to report [%s]\n", def("min-score"))
	fmt.Fprintf(out, "      --match-score int          Score per matching column [%s]\n", def("match-score"))
	fmt.Fprintf(out, "      --miss-score int           Penalty per mismatch or gap column [%s]\n", def("miss-score"))
	fmt.Fprintf(out, "      --aligner string           Alignment backend: wfa | edit [%s]\n", def("aligner"))

	fmt.Fprintln(out, "\nPerformance:")
	fmt.Fprintf(out, "  -t, --threads int              Verification workers (0=all CPUs) [%s]\n", def("threads"))

	fmt.Fprintln(out, "\nOutput:")
	fmt.Fprintf(out, "  -o, --output string            Output: text | json | jsonl | fasta [%s]\n", def("output"))
	fmt.Fprintf(out, "      --no-header                Suppress header line [%s]\n", def("no-header"))
	fmt.Fprintf(out, "      --pretty                   Text output: draw each alignment under its row [%s]\n", def("pretty"))
	fmt.Fprintf(out, "      --no-match-exit-code int   Exit code when no repeats are reported [%s]\n", def("no-match-exit-code"))
	fmt.Fprintf(out, "      --progress                 Progress bar on stderr [%s]\n", def("progress"))

	fmt.Fprintln(out, "\nMiscellaneous:")
	fmt.Fprintf(out, "      --log-level string         trace | debug | info | warn | error [%s]\n", def("log-level"))
	fmt.Fprintf(out, "      --log-format string        console | json [%s]\n", def("log-format"))
	fmt.Fprintln(out, "  -q, --quiet                    Only log errors")
	fmt.Fprintln(out, "      --examples                 Print usage examples and exit")
	fmt.Fprintln(out, "  -v, --version                  Print version and exit")
	fmt.Fprintln(out, "  -h, --help                     Show this help and exit")

	fmt.Fprintln(out, "\nEvery flag except the input list can also be set as TRFIND_<FLAG> in the")
	fmt.Fprintln(out, "environment, e.g. TRFIND_MAX_PATTERN_SIZE=50 or TRFIND_PROBE_LENGTHS=4,5.")
}

// PrintExamples prints a small quickstart, followed by a one-line tip to
// discover full help.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s quickstart\n\n", name)
	_, _ = fmt.Fprintf(out, "  # scan a genome with defaults\n  %s genome.fa.gz\n\n", name)
	_, _ = fmt.Fprintf(out, "  # periods up to 100 with the 0.75 table, JSON lines out\n  %s -m 100 --match-probability 0.75 -o jsonl genome.fa\n\n", name)
	_, _ = fmt.Fprintf(out, "  # two probe lengths, read from a pipe\n  zcat reads.fa.gz | %s -k 4 -k 5 -\n", name)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
