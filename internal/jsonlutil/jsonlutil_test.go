package jsonlutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"
)

type row struct {
	Name string `json:"name"`
}

func encodeRow(enc *json.Encoder, r row) error { return enc.Encode(r) }

func never(error) bool { return false }

func TestEncodeLines(t *testing.T) {
	in := make(chan row, 2)
	in <- row{"a&b"}
	in <- row{"c"}
	close(in)

	var buf bytes.Buffer
	if err := Encode(&buf, in, encodeRow, never); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "{\"name\":\"a&b\"}\n{\"name\":\"c\"}\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestEncodeDrainsOnError(t *testing.T) {
	boom := errors.New("boom")
	in := make(chan row, 3)
	in <- row{"a"}
	in <- row{"b"}
	in <- row{"c"}
	close(in)

	err := Encode(io.Discard, in, func(*json.Encoder, row) error { return boom }, never)
	if !errors.Is(err, boom) {
		t.Fatalf("err=%v", err)
	}
	if len(in) != 0 {
		t.Fatalf("input not drained: %d left", len(in))
	}
}

func TestEncodeBrokenIsSuccess(t *testing.T) {
	in := make(chan row, 1)
	in <- row{"a"}
	close(in)
	err := Encode(io.Discard, in, func(*json.Encoder, row) error { return io.ErrClosedPipe },
		func(err error) bool { return errors.Is(err, io.ErrClosedPipe) })
	if err != nil {
		t.Fatalf("broken pipe should be swallowed, got %v", err)
	}
}
