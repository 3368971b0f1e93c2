package integration

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"moop/internal/alignapp"
)

func TestAlignMatchesFixtureGolden(t *testing.T) {
	golden, err := os.ReadFile("../../core/alignfmt/testdata/blastn_minus_strand.golden")
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	var out, errBuf bytes.Buffer
	code := alignapp.Run([]string{
		"--qseq", "GTACGTACGT", "--sseq", "GTACGTACGT",
		"--qfrom", "3", "--qto", "12", "--sfrom", "30", "--sto", "21",
		"--strand", "Minus",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errBuf.String())
	}
	if want := strings.TrimPrefix(string(golden), "\n"); out.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestAlignUsageErrors(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := alignapp.Run([]string{"--qseq", "ACGT"}, &out, &errBuf); code != 2 {
		t.Fatalf("exit %d want 2", code)
	}
	if !strings.Contains(errBuf.String(), "--qseq and --sseq are required") {
		t.Fatalf("stderr=%q", errBuf.String())
	}
}
