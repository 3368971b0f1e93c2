// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"moop/internal/jsonutil"
)

// Reuse a 64 KiB buffered writer across JSONL writers to avoid per-writer mallocs.
// Encoder itself is tiny and tied to an io.Writer, so we (re)create it per call.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// Encode writes every value received on in as one JSON line until in is
// closed.
//   - encode: fn to encode one value (convert to wire type & enc.Encode)
//   - isBroken: recognizer for broken/closed pipe errors to suppress them
//
// On an encode error the remaining input is drained so senders never block.
func Encode[T any](out io.Writer, in <-chan T, encode func(*json.Encoder, T) error, isBroken func(error) bool) error {
	bw := bwPool.Get().(*bufio.Writer)
	// Rebind to the actual output while keeping the pooled buffer.
	bw.Reset(out)
	// Always put back to pool and drop references to 'out'.
	defer func() {
		bw.Reset(io.Discard)
		bwPool.Put(bw)
	}()

	enc := jsonutil.NewEncoder(bw)
	for v := range in {
		if err := encode(enc, v); err != nil {
			for range in {
			}
			if isBroken(err) {
				return nil
			}
			return err
		}
	}
	if err := bw.Flush(); err != nil && !isBroken(err) {
		return err
	}
	return nil
}
