package config

import (
	"os"
	"strconv"
	"strings"
)

// Env is a namespaced view over environment variables (e.g. "TRFIND_").
type Env struct {
	prefix string
	lookup func(string) (string, bool)
}

// NewEnv creates an Env reading the process environment.
func NewEnv(prefix string) Env { return Env{prefix: prefix, lookup: os.LookupEnv} }

// Prefix creates a child view with an additional prefix.
func (e Env) Prefix(p string) Env { return Env{prefix: e.prefix + p, lookup: e.lookup} }

// Key composes the fully-qualified variable name.
func (e Env) Key(k string) string { return e.prefix + k }

func (e Env) raw(key string) (string, bool) {
	if e.lookup == nil {
		return "", false
	}
	v, ok := e.lookup(e.Key(key))
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}

// MayString returns the value of key or def.
func (e Env) MayString(key, def string) string {
	if v, ok := e.raw(key); ok {
		return v
	}
	return def
}

// MayInt returns key parsed as int or def. Malformed values are reported.
func (e Env) MayInt(key string, def int) (int, error) {
	v, ok := e.raw(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def, envErr(e.Key(key), v, "an integer")
	}
	return n, nil
}

// MayFloat64 returns key parsed as float64 or def.
func (e Env) MayFloat64(key string, def float64) (float64, error) {
	v, ok := e.raw(key)
	if !ok {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def, envErr(e.Key(key), v, "a number")
	}
	return f, nil
}

// MayBool returns key parsed as bool or def.
func (e Env) MayBool(key string, def bool) (bool, error) {
	v, ok := e.raw(key)
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, envErr(e.Key(key), v, "a boolean")
	}
	return b, nil
}

// MayInts returns key parsed as a comma-separated int list or def.
func (e Env) MayInts(key string, def []int) ([]int, error) {
	v, ok := e.raw(key)
	if !ok {
		return def, nil
	}
	parts := strings.Split(v, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return def, envErr(e.Key(key), v, "a comma-separated integer list")
		}
		out = append(out, n)
	}
	return out, nil
}
