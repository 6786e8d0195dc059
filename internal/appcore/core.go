// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"trfind/internal/align"
	"trfind/internal/config"
	"trfind/internal/engine"
	perr "trfind/internal/errors"
	"trfind/internal/logger"
	"trfind/internal/pattern"
	"trfind/internal/pipeline"
	"trfind/internal/progress"
	"trfind/internal/repeat"
	"trfind/internal/verify"
	"trfind/internal/writers"
)

// Options is a fully parsed and validated run.
type Options struct {
	config.Config

	SeqFiles        []string
	Header          bool
	NoMatchExitCode int
	Pretty          bool
	Progress        bool
}

// Build assembles the detection engine and verifier described by c.
func Build(c config.Config) (*engine.Engine, *verify.Verifier, error) {
	eng, err := engine.New(engine.Config{
		ProbeLengths:     c.ProbeLengths,
		MaxPeriod:        c.MaxPatternSize,
		MatchProbability: c.MatchProbability,
		IndelProbability: c.IndelProbability,
	})
	if err != nil {
		return nil, nil, err
	}
	al, err := align.ByName(c.Aligner)
	if err != nil {
		return nil, nil, perr.Wrap(err, perr.ErrorCodeConfig, "aligner")
	}
	ver := verify.New(verify.Config{
		MinScore:   c.MinScore,
		MatchScore: c.MatchScore,
		MissScore:  c.MissScore,
	}, al, pattern.NewReducer(c.MaxPatternSize))
	return eng, ver, nil
}

// Run scans o.SeqFiles and writes every reported repeat to stdout. Progress
// goes to stderr; diagnostics go to log. The return value is the exit code.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, log logger.Logger) int {
	eng, ver, err := Build(o.Config)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return perr.ExitCode(err)
	}

	outw := bufio.NewWriter(stdout)
	thr := o.EffectiveThreads()
	bar := progress.New(stderr, o.Progress)

	inCh, writeErr := writers.StartRepeatWriter(outw, o.Output, writers.Options{Header: o.Header, Pretty: o.Pretty}, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	log.Debug().
		Strs("inputs", o.SeqFiles).
		Ints("probe_lengths", o.ProbeLengths).
		Int("max_pattern_size", o.MaxPatternSize).
		Float64("match_probability", o.MatchProbability).
		Str("aligner", o.Aligner).
		Int("threads", thr).
		Msg("starting scan")

	start := time.Now()
	total, runErr := pipeline.ForEachRepeat(ctx, pipeline.Config{Threads: thr}, o.SeqFiles, eng, ver,
		hooks(log, bar),
		func(r verify.Report) error {
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)
	close(inCh)
	bar.Finish()

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		log.Error().Err(werr).Msg("write output")
		return perr.ExitCodeOf(perr.ErrorCodeOutput)
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		log.Error().Err(e).Msg("flush output")
		return perr.ExitCodeOf(perr.ErrorCodeOutput)
	}
	if runErr != nil {
		if perr.IsCode(runErr, perr.ErrorCodeCanceled) {
			log.Warn().Int("reported", total).Msg("interrupted")
		} else {
			log.Error().Err(runErr).Msg("scan failed")
		}
		return perr.ExitCode(runErr)
	}

	log.Info().
		Str("reported", humanize.Comma(int64(total))).
		Dur("elapsed", time.Since(start)).
		Msg("done")
	if total == 0 {
		return o.NoMatchExitCode
	}
	return 0
}

func hooks(log logger.Logger, bar *progress.Bar) pipeline.Hooks {
	return pipeline.Hooks{
		OnSkip: func(file, name, reason string) {
			log.Warn().Str("file", file).Str("sequence", name).Msg(reason)
		},
		OnCandidates: func(_ string, n int) { bar.AddTotal(n) },
		OnVerified:   bar.Increment,
		OnAlignError: func(name string, tr *repeat.TandemRepeat, err error) {
			log.Warn().Err(err).
				Str("sequence", name).
				Int("first", tr.First).
				Int("last", tr.Last).
				Int("period", tr.UnitLength).
				Msg("alignment failed, candidate skipped")
		},
		OnSequence: func(st pipeline.SequenceStats) {
			log.Info().
				Str("sequence", st.Name).
				Str("length", humanize.Comma(int64(st.Length))).
				Int("raw", st.Raw).
				Int("refined", st.Refined).
				Int("kept", st.Kept).
				Int("reported", st.Reported).
				Dur("detect", st.DetectTime).
				Dur("verify", st.VerifyTime).
				Msg("scanned")
		},
	}
}
