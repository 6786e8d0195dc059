// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"trfind/internal/engine"
	perr "trfind/internal/errors"
	"trfind/internal/fasta"
	"trfind/internal/repeat"
	"trfind/internal/verify"
)

// Config controls the scanning pipeline.
type Config struct {
	Threads int // verification workers (>=1)
}

// SequenceStats summarises one processed record.
type SequenceStats struct {
	SourceFile string
	Name       string
	Length     int
	engine.Stats
	Reported      int
	AlignFailures int
	DetectTime    time.Duration
	VerifyTime    time.Duration
}

// Hooks are optional observers. All of them run on the calling goroutine
// except OnVerified, which runs on verification workers.
type Hooks struct {
	OnSkip       func(file, name, reason string)
	OnCandidates func(name string, n int)
	OnVerified   func()
	OnAlignError func(name string, tr *repeat.TandemRepeat, err error)
	OnSequence   func(SequenceStats)
}

type outcome struct {
	rep repeat.TandemRepeat
	r   verify.Report
	ok  bool
	err error
}

// ForEachRepeat reads every record of seqFiles, finds and verifies tandem
// repeats, and calls visit for each accepted report, in candidate order
// within a record and record order across files. It returns the number of
// reports visited and the first error encountered.
func ForEachRepeat(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	eng *engine.Engine,
	ver *verify.Verifier,
	hooks Hooks,
	visit func(verify.Report) error,
) (int, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	total, scanned := 0, 0
	for _, fa := range seqFiles {
		err := fasta.Stream(ctx, fa, func(rec fasta.Record) error {
			if len(rec.Seq) == 0 {
				if hooks.OnSkip != nil {
					hooks.OnSkip(fa, rec.ID, "empty sequence")
				}
				return nil
			}
			scanned++
			n, err := processRecord(ctx, cfg, fa, rec, eng, ver, hooks, visit)
			total += n
			if err != nil {
				return perr.WithOp(err, rec.ID)
			}
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return total, perr.Canceled(ctx.Err())
			}
			return total, err
		}
	}
	if scanned == 0 {
		return 0, perr.New(perr.ErrorCodeInput, "no non-empty sequences in input")
	}
	return total, nil
}

func processRecord(
	ctx context.Context,
	cfg Config,
	file string,
	rec fasta.Record,
	eng *engine.Engine,
	ver *verify.Verifier,
	hooks Hooks,
	visit func(verify.Report) error,
) (int, error) {
	st := SequenceStats{SourceFile: file, Name: rec.ID, Length: len(rec.Seq)}

	t0 := time.Now()
	cands, est, err := eng.Candidates(ctx, rec.Seq)
	if err != nil {
		return 0, err
	}
	st.Stats = est
	st.DetectTime = time.Since(t0)
	if hooks.OnCandidates != nil {
		hooks.OnCandidates(rec.ID, len(cands))
	}

	t1 := time.Now()
	results := make([]outcome, len(cands))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Threads)
	for i, tr := range cands {
		tr.SequenceName = rec.ID
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, ok, err := ver.Verify(rec.Seq, tr)
			results[i] = outcome{rep: *tr, r: r, ok: ok, err: err}
			if hooks.OnVerified != nil {
				hooks.OnVerified()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, perr.Canceled(err)
	}
	st.VerifyTime = time.Since(t1)

	for i := range results {
		o := &results[i]
		if o.err != nil {
			st.AlignFailures++
			if hooks.OnAlignError != nil {
				hooks.OnAlignError(rec.ID, &o.rep, o.err)
			}
			continue
		}
		if !o.ok {
			continue
		}
		if err := visit(o.r); err != nil {
			return st.Reported, err
		}
		st.Reported++
	}
	if hooks.OnSequence != nil {
		hooks.OnSequence(st)
	}
	return st.Reported, nil
}
