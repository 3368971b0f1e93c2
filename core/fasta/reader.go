// core/fasta/reader.go
package fasta

import (
	"context"
	"fmt"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/shenwei356/xopen"
)

// Record describes one submitted query sequence.
type Record struct {
	ID   string // first word of the header
	Desc string
	Len  int
}

// ScanPathCtx reads the FASTA file at path and calls emit once per record.
// "-" reads stdin and compressed input is detected by xopen. Cancellation is
// checked between records; a non-nil error from emit stops the scan.
func ScanPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	fh, err := xopen.Ropen(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()

	// residues are not validated, so one template serves DNA and protein
	sc := seqio.NewScanner(fasta.NewReader(fh, linear.NewSeq("", nil, alphabet.DNAredundant)))
	for sc.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := sc.Seq().(*linear.Seq)
		if err := emit(Record{ID: s.ID, Desc: strings.TrimSpace(s.Desc), Len: s.Len()}); err != nil {
			return err
		}
	}
	if err := sc.Error(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// LoadLengths maps each record ID in path to its sequence length. Later
// duplicates overwrite earlier ones.
func LoadLengths(path string) (map[string]int, error) {
	return LoadLengthsCtx(context.Background(), path)
}

// LoadLengthsCtx is LoadLengths with cancellation.
func LoadLengthsCtx(ctx context.Context, path string) (map[string]int, error) {
	lengths := make(map[string]int)
	err := ScanPathCtx(ctx, path, func(r Record) error {
		lengths[r.ID] = r.Len
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lengths, nil
}
