// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shenwei356/xopen"

	"moop/internal/cmdutil"
	"moop/internal/writers"
)

type Options struct {
	Inputs  []string
	OutFile string // empty writes to stdout

	NoMatchExitCode int
}

// VisitorFunc turns one input into zero or more outputs.
type VisitorFunc[T any] func(ctx context.Context, input string) ([]T, error)

// InputError marks a per-input failure the run survives: it is reported,
// the input is skipped and the run exits 3 at the end.
type InputError struct {
	Input string
	Msg   string
}

func (e *InputError) Error() string { return e.Input + ": " + e.Msg }

type WriterFactory[T any] interface {
	NeedSeq() bool
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run streams every input through visit into the writer. matched reports
// whether an output counts toward the no-match exit code.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	visit VisitorFunc[T],
	matched func(T) bool,
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriterSize(stdout, 64<<10)

	var (
		dst     io.Writer = outw
		outFile *xopen.Writer
	)
	if o.OutFile != "" {
		fh, err := xopen.Wopen(o.OutFile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 3
		}
		outFile, dst = fh, fh
	}

	inCh, writeErr := wf.Start(dst, 16)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	failed := false
	skip := func(_ string, err error) bool {
		var ie *InputError
		if !errors.As(err, &ie) {
			return false
		}
		// failures are never quiet; they change the exit code
		cmdutil.Warnf(stderr, false, "%s", ie.Error())
		failed = true
		return true
	}

	hits := 0
	_, perr := cmdutil.RunStream[T](ctx, o.Inputs, visit, skip, func(x T) error {
		select {
		case inCh <- x:
			if matched == nil || matched(x) {
				hits++
			}
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)

	werr := <-writeErr
	if outFile != nil {
		if e := outFile.Close(); e != nil && werr == nil {
			werr = e
		}
	}
	if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	if failed {
		return 3
	}
	if hits == 0 {
		return o.NoMatchExitCode
	}
	return 0
}

// Flush writes buffered help or version text and maps the outcome to an exit
// code: code on success, 0 on a broken pipe, 3 on any other write error.
func Flush(outw *bufio.Writer, stderr io.Writer, code int) int {
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}
