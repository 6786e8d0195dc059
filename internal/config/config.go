// Package config holds the run configuration: defaults, environment overlay
// and validation. Command-line flags are layered on top by internal/cli.
package config

import (
	"runtime"
	"strings"

	perr "trfind/internal/errors"
)

// EnvPrefix namespaces every environment variable trfind reads.
const EnvPrefix = "TRFIND_"

// Config is everything a run needs besides its inputs.
type Config struct {
	// Detection
	MatchProbability float64 `flag:"match-probability" validate:"matchprob"`
	IndelProbability float64 `flag:"indel-probability" validate:"gte=0,lt=1"`
	MaxPatternSize   int     `flag:"max-pattern-size" validate:"maxperiod"`
	ProbeLengths     []int   `flag:"probe-length" validate:"min=1,dive,gt=0"`

	// Scoring
	MinScore   int `flag:"min-score"`
	MatchScore int `flag:"match-score" validate:"gte=0"`
	MissScore  int `flag:"miss-score" validate:"gte=0"`

	// Runtime
	Aligner string `flag:"aligner" validate:"oneof=wfa edit"`
	Threads int    `flag:"threads" validate:"gte=0"`

	// Output and diagnostics
	Output    string `flag:"output" validate:"oneof=text json jsonl fasta"`
	LogLevel  string `flag:"log-level" validate:"oneof=trace debug info warn error"`
	LogFormat string `flag:"log-format" validate:"oneof=console json"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		MatchProbability: 0.8,
		IndelProbability: 0.1,
		MaxPatternSize:   25,
		ProbeLengths:     []int{5},
		MinScore:         30,
		MatchScore:       2,
		MissScore:        4,
		Aligner:          "wfa",
		Threads:          0,
		Output:           "text",
		LogLevel:         "info",
		LogFormat:        "console",
	}
}

// FromEnv overlays TRFIND_* variables on top of base.
func FromEnv(env Env, base Config) (Config, error) {
	c := base
	var errs []string
	note := func(err error) {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}
	var err error
	c.MatchProbability, err = env.MayFloat64("MATCH_PROBABILITY", c.MatchProbability)
	note(err)
	c.IndelProbability, err = env.MayFloat64("INDEL_PROBABILITY", c.IndelProbability)
	note(err)
	c.MaxPatternSize, err = env.MayInt("MAX_PATTERN_SIZE", c.MaxPatternSize)
	note(err)
	c.ProbeLengths, err = env.MayInts("PROBE_LENGTHS", c.ProbeLengths)
	note(err)
	c.MinScore, err = env.MayInt("MIN_SCORE", c.MinScore)
	note(err)
	c.MatchScore, err = env.MayInt("MATCH_SCORE", c.MatchScore)
	note(err)
	c.MissScore, err = env.MayInt("MISS_SCORE", c.MissScore)
	note(err)
	c.Threads, err = env.MayInt("THREADS", c.Threads)
	note(err)
	c.Aligner = strings.ToLower(env.MayString("ALIGNER", c.Aligner))
	c.Output = strings.ToLower(env.MayString("OUTPUT", c.Output))
	c.LogLevel = strings.ToLower(env.MayString("LOG_LEVEL", c.LogLevel))
	c.LogFormat = strings.ToLower(env.MayString("LOG_FORMAT", c.LogFormat))

	if len(errs) > 0 {
		return base, perr.New(perr.ErrorCodeConfig, strings.Join(errs, "; "))
	}
	return c, nil
}

// EffectiveThreads resolves Threads=0 to the CPU count.
func (c Config) EffectiveThreads() int {
	if c.Threads <= 0 {
		return runtime.NumCPU()
	}
	return c.Threads
}

func envErr(key, val, want string) error {
	return perr.Newf(perr.ErrorCodeConfig, "%s=%q is not %s", key, val, want)
}
