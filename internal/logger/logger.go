// Package logger provides a zerolog wrapper with opinionated defaults for
// trfind's diagnostics. Results never go through the logger.
package logger

import (
	"io"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the project-wide logging type
type Logger = zerolog.Logger

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options configures the logger
type Options struct {
	Level        string
	Format       string
	Component    string
	Writer       io.Writer
	WithCaller   bool
	StaticFields map[string]string
}

// New builds a logger from opt. Writer defaults to stderr.
func New(opt Options) Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var w io.Writer = os.Stderr
	if opt.Writer != nil {
		w = opt.Writer
	}
	if opt.Format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: !isTerminal(w)}
	}

	ctx := zerolog.New(w).Level(ParseLevel(opt.Level)).With().Timestamp()
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil && opt.Format == FormatJSON {
		ctx = ctx.Str("go_version", bi.GoVersion)
	}
	if opt.Component != "" {
		ctx = ctx.Str("component", opt.Component)
	}
	for k, v := range opt.StaticFields {
		ctx = ctx.Str(k, v)
	}
	log := ctx.Logger()
	if opt.WithCaller {
		log = log.With().Caller().Logger()
	}
	return log
}

// Nop returns a disabled logger.
func Nop() Logger { return zerolog.Nop() }

// Named returns a child logger with a component field
func Named(l Logger, component string) Logger {
	if component == "" {
		return l
	}
	return l.With().Str("component", component).Logger()
}

// ParseLevel supports string-only levels; unknown strings mean info.
func ParseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
