// Package appshell is the process boundary shared by the trfind binaries.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the signature of app.RunContext.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with os.Args and exits with its status. The first SIGINT or
// SIGTERM cancels the context; a second one kills the process.
func Main(run RunFunc) {
	os.Exit(execute(run, os.Args[1:]))
}

func execute(run RunFunc, argv []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		stop()
	}()

	code := run(ctx, argv, os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}
	return code
}
