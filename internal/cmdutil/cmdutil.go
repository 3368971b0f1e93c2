// internal/cmdutil/cmdutil.go
package cmdutil

import (
	"context"
	"fmt"
	"io"
)

// Warnf writes a "WARN: " line to dst unless quiet is set.
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// RunStream visits every input in order and streams the kept values through
// send. A visit error stops the run unless skip reports it as recoverable.
// It returns the number of values sent and the first fatal error.
func RunStream[T any](
	ctx context.Context,
	inputs []string,
	visit func(ctx context.Context, input string) ([]T, error),
	skip func(input string, err error) bool,
	send func(T) error,
) (int, error) {
	total := 0
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		out, err := visit(ctx, in)
		if err != nil {
			if skip != nil && skip(in, err) {
				continue
			}
			return total, err
		}
		for _, x := range out {
			if err := send(x); err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}
