// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"trfind/internal/appcore"
	"trfind/internal/cli"
	"trfind/internal/config"
	perr "trfind/internal/errors"
	"trfind/internal/logger"
	"trfind/internal/version"
	"trfind/internal/writers"
)

const name = "trfind"

// RunContext parses argv and runs one scan. It returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	flush := func(ok int) int {
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return ok
	}

	base, err := config.FromEnv(config.NewEnv(config.EnvPrefix), config.Default())
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return perr.ExitCode(err)
	}

	fs := cli.NewFlagSet(name)
	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := cli.ParseArgs(fs, argv, base)
	switch {
	case errors.Is(err, pflag.ErrHelp):
		cli.PrintUsage(outw, name, fs)
		return flush(0)
	case errors.Is(err, cli.ErrPrintedAndExitOK):
		cli.PrintExamples(outw, name)
		return flush(0)
	case err != nil:
		_, _ = fmt.Fprintln(stderr, "error:", err)
		cli.PrintUsage(outw, name, fs)
		return flush(perr.ExitCode(err))
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Info())
		return flush(0)
	}

	log := logger.New(logger.Options{
		Level:        opts.LogLevel,
		Format:       opts.LogFormat,
		Writer:       stderr,
		StaticFields: map[string]string{"run_id": uuid.NewString()},
	})

	return appcore.Run(parent, stdout, stderr, appcore.Options{
		Config:          opts.Config,
		SeqFiles:        opts.SeqFiles,
		Header:          opts.Header,
		NoMatchExitCode: opts.NoMatchExitCode,
		Pretty:          opts.Pretty,
		Progress:        opts.Progress,
	}, log)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
