package config

import (
	"strings"
	"testing"

	perr "trfind/internal/errors"
)

func mapEnv(m map[string]string) Env {
	return Env{prefix: EnvPrefix, lookup: func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	c := Default()
	c.MatchProbability = 0.9
	c.MaxPatternSize = 0
	c.ProbeLengths = []int{5, 0}
	c.Aligner = "sw"
	err := c.Validate()
	if !perr.IsCode(err, perr.ErrorCodeConfig) {
		t.Fatalf("err = %v", err)
	}
	msg := err.Error()
	for _, want := range []string{
		"--match-probability must be 0.8 or 0.75",
		"--max-pattern-size must be between 1 and 2001",
		"--probe-length[1]",
		"--aligner must be one of [wfa edit]",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("missing %q in %q", want, msg)
		}
	}
}

func TestValidateAcceptsBothTables(t *testing.T) {
	for _, p := range []float64{0.8, 0.75} {
		c := Default()
		c.MatchProbability = p
		if err := c.Validate(); err != nil {
			t.Fatalf("p=%v: %v", p, err)
		}
	}
	c := Default()
	c.ProbeLengths = nil
	if err := c.Validate(); err == nil {
		t.Fatalf("empty probe length list accepted")
	}
}

func TestFromEnvOverlay(t *testing.T) {
	env := mapEnv(map[string]string{
		"TRFIND_MATCH_PROBABILITY": "0.75",
		"TRFIND_MAX_PATTERN_SIZE":  " 50 ",
		"TRFIND_PROBE_LENGTHS":     "4, 6",
		"TRFIND_ALIGNER":           "EDIT",
		"TRFIND_MIN_SCORE":         "",
	})
	c, err := FromEnv(env, Default())
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if c.MatchProbability != 0.75 || c.MaxPatternSize != 50 || c.Aligner != "edit" || c.MinScore != 30 {
		t.Fatalf("config = %+v", c)
	}
	if len(c.ProbeLengths) != 2 || c.ProbeLengths[0] != 4 || c.ProbeLengths[1] != 6 {
		t.Fatalf("probe lengths = %v", c.ProbeLengths)
	}
}

func TestFromEnvMalformed(t *testing.T) {
	env := mapEnv(map[string]string{"TRFIND_THREADS": "many", "TRFIND_INDEL_PROBABILITY": "x"})
	c, err := FromEnv(env, Default())
	if !perr.IsCode(err, perr.ErrorCodeConfig) {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(err.Error(), "TRFIND_THREADS") || !strings.Contains(err.Error(), "TRFIND_INDEL_PROBABILITY") {
		t.Fatalf("err = %v", err)
	}
	if c.Threads != 0 {
		t.Fatalf("base must be returned on error")
	}
}

func TestEnvPrefix(t *testing.T) {
	e := NewEnv("A_").Prefix("B_")
	if e.Key("X") != "A_B_X" {
		t.Fatalf("key = %s", e.Key("X"))
	}
}

func TestEffectiveThreads(t *testing.T) {
	c := Default()
	if c.EffectiveThreads() < 1 {
		t.Fatalf("auto threads < 1")
	}
	c.Threads = 3
	if c.EffectiveThreads() != 3 {
		t.Fatalf("threads = %d", c.EffectiveThreads())
	}
}
