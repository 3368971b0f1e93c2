// internal/appshell/appshell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
)

// RunFunc is the shape every tool's RunContext shares.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs a tool with SIGINT/SIGTERM cancellation and exits with its code.
// A bare invocation shows help.
func Main(run RunFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == 0 {
		code = 130
	}

	stop()
	os.Exit(code)
}
