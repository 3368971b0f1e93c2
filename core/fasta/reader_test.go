package fasta

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const plain = `>seq1 first query
ACGT
ACGTAC
>seq2
MKVLA
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

// writeGz creates a gzipped FASTA file with provided data, returns the file path.
func writeGz(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "q.fa.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestLoadLengthsPlain(t *testing.T) {
	got, err := LoadLengths(writeFile(t, "q.fa", plain))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got["seq1"] != 10 || got["seq2"] != 5 {
		t.Fatalf("lengths = %v", got)
	}
}

func TestLoadLengthsGzip(t *testing.T) {
	got, err := LoadLengths(writeGz(t, plain))
	if err != nil {
		t.Fatalf("load gz: %v", err)
	}
	if got["seq1"] != 10 {
		t.Fatalf("gzip parse failed, lengths=%v", got)
	}
}

func TestScanPathCtxRecords(t *testing.T) {
	var recs []Record
	err := ScanPathCtx(context.Background(), writeFile(t, "q.fa", plain), func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(recs) != 2 || recs[0].Desc != "first query" || recs[1].ID != "seq2" {
		t.Fatalf("records = %+v", recs)
	}
}

func TestScanPathCtxStopsOnEmitError(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := ScanPathCtx(context.Background(), writeFile(t, "q.fa", plain), func(Record) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) || n != 1 {
		t.Fatalf("err=%v n=%d", err, n)
	}
}

func TestLoadLengthsCtxCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := LoadLengthsCtx(ctx, writeFile(t, "q.fa", plain)); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestLoadLengthsMissingFile(t *testing.T) {
	if _, err := LoadLengths(filepath.Join(t.TempDir(), "missing.fa")); err == nil {
		t.Fatal("expected error")
	}
}
