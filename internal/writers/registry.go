// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"moop/internal/output"
)

// Config is what every registered writer may consult.
type Config struct {
	Header bool // TSV header row, GFF version pragma
	Text   output.Options
}

// StreamFunc consumes queries until in is closed.
type StreamFunc func(w io.Writer, in <-chan output.Query, cfg Config) error

// QueryWriters maps a format name to its writer.
// Register in init() blocks; see builtin.go.
var QueryWriters = map[string]StreamFunc{}

// Register adds or replaces (last wins) the writer for format.
func Register(format string, fn StreamFunc) { QueryWriters[format] = fn }

// Registered lists the known formats in sorted order.
func Registered() []string {
	out := make([]string, 0, len(QueryWriters))
	for f := range QueryWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, in <-chan output.Query, cfg Config) error {
	fn, ok := QueryWriters[format]
	if !ok {
		// drain so the producer never blocks on a dead writer
		for range in {
		}
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, in, cfg)
}

// StartQueryWriter spins up a writer goroutine. Close the returned channel
// when done, then read exactly one value from the error channel. Broken pipes
// are reported as success.
func StartQueryWriter(out io.Writer, format string, cfg Config, bufSize int) (chan<- output.Query, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Query, bufSize)
	errCh := make(chan error, 1)

	go func() {
		err := Write(format, out, in, cfg)
		if err != nil {
			// keep the producer unblocked after an early failure
			for range in {
			}
		}
		if IsBrokenPipe(err) {
			err = nil
		}
		errCh <- err
	}()

	return in, errCh
}

// IsBrokenPipe reports whether err means the reader went away, as when the
// report is piped into head. Callers treat it as success.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
