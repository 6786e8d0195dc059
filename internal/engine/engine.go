package engine

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	perr "trfind/internal/errors"
	"trfind/internal/repeat"
	"trfind/internal/thresholds"
)

// DefaultProbeLength is the probe length used when none is configured.
const DefaultProbeLength = 5

// Config holds candidate-detection parameters.
type Config struct {
	ProbeLengths     []int
	MaxPeriod        int
	MatchProbability float64
	IndelProbability float64
}

// Params are the resolved per-pass parameters.
type Params struct {
	MaxPeriod        int
	IndelProbability float64
	Table            thresholds.Table
}

// Stats counts candidates at each stage for one sequence.
type Stats struct {
	Raw     int // accepted by the detector
	Refined int // after chain merging, all probe lengths
	Kept    int // after overlap resolution
}

// Engine finds tandem-repeat candidates. It is safe for concurrent use.
type Engine struct {
	cfg    Config
	params Params
	pool   sync.Pool
}

// New validates c and returns an Engine.
func New(c Config) (*Engine, error) {
	table, err := thresholds.ForProbability(c.MatchProbability)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeConfig, "engine")
	}
	if c.MaxPeriod < 1 {
		return nil, perr.Newf(perr.ErrorCodeConfig, "max period must be positive, got %d", c.MaxPeriod)
	}
	if c.MaxPeriod > table.Len() {
		return nil, perr.Newf(perr.ErrorCodeConfig, "max period %d exceeds threshold table (%d)", c.MaxPeriod, table.Len())
	}
	if len(c.ProbeLengths) == 0 {
		c.ProbeLengths = []int{DefaultProbeLength}
	}
	for _, k := range c.ProbeLengths {
		if k < 1 {
			return nil, perr.Newf(perr.ErrorCodeConfig, "probe length must be positive, got %d", k)
		}
	}
	e := &Engine{
		cfg:    c,
		params: Params{MaxPeriod: c.MaxPeriod, IndelProbability: c.IndelProbability, Table: table},
	}
	e.pool.New = func() any { return newScanner() }
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Detect runs the detector alone with probe length k.
func (e *Engine) Detect(ctx context.Context, seq []byte, k int) (*Groups, error) {
	if err := e.checkSequence(seq, k); err != nil {
		return nil, err
	}
	s := e.pool.Get().(*scanner)
	defer func() {
		s.reset()
		e.pool.Put(s)
	}()
	return s.detect(ctx, seq, k, e.params)
}

// Candidates runs detect, refine, sort and dedupe once per probe length, then
// merges the passes and resolves overlaps across them.
func (e *Engine) Candidates(ctx context.Context, seq []byte) ([]*repeat.TandemRepeat, Stats, error) {
	var st Stats
	for _, k := range e.cfg.ProbeLengths {
		if err := e.checkSequence(seq, k); err != nil {
			return nil, st, err
		}
	}

	passes := make([][]*repeat.TandemRepeat, len(e.cfg.ProbeLengths))
	raw := make([]int, len(e.cfg.ProbeLengths))
	refined := make([]int, len(e.cfg.ProbeLengths))
	g, gctx := errgroup.WithContext(ctx)
	for idx, k := range e.cfg.ProbeLengths {
		g.Go(func() error {
			gs, err := e.Detect(gctx, seq, k)
			if err != nil {
				return err
			}
			raw[idx] = gs.Len()
			reps := Refine(gs, e.params.IndelProbability)
			refined[idx] = len(reps)
			SortByFirst(reps)
			passes[idx] = Dedupe(reps)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, st, perr.Canceled(err)
		}
		return nil, st, err
	}

	var merged []*repeat.TandemRepeat
	for i, p := range passes {
		st.Raw += raw[i]
		st.Refined += refined[i]
		merged = append(merged, p...)
	}
	if len(passes) > 1 {
		SortByFirst(merged)
		merged = Dedupe(merged)
	}
	st.Kept = len(merged)
	return merged, st, nil
}

func (e *Engine) checkSequence(seq []byte, k int) error {
	if len(seq) == 0 {
		return perr.New(perr.ErrorCodeInput, "empty sequence")
	}
	if k >= len(seq) {
		return perr.Newf(perr.ErrorCodeConfig, "probe length %d must be shorter than the sequence (%d bp)", k, len(seq))
	}
	return nil
}
