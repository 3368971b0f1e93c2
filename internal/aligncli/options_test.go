package aligncli

import (
	"errors"
	"flag"
	"io"
	"testing"

	"moop-core/alignfmt"
	"moop/internal/clibase"
)

func newFS() *flag.FlagSet {
	fs := NewFlagSet("test")
	fs.SetOutput(io.Discard)
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	o, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return o
}

func TestMinusStrandRequest(t *testing.T) {
	o := mustParse(t,
		"--qseq", "GTACGTACGT", "--sseq", "GTACGTACGT",
		"--qfrom", "3", "--qto", "12", "--sfrom", "30", "--sto", "21", "--strand", "minus",
	)
	req := o.Request()
	if req.Strand != alignfmt.Minus || req.AlignmentLength != 10 {
		t.Fatalf("request %+v", req)
	}
	if req.Midline != "||||||||||" {
		t.Fatalf("derived midline %q", req.Midline)
	}
}

func TestDerivedEndpoints(t *testing.T) {
	o := mustParse(t, "--qseq", "AC-GT", "--sseq", "ACAGT", "--sfrom", "50", "--strand", "Minus")
	req := o.Request()
	if req.QueryFrom != 1 || req.QueryTo != 4 {
		t.Errorf("query %d-%d", req.QueryFrom, req.QueryTo)
	}
	if req.HitFrom != 50 || req.HitTo != 46 {
		t.Errorf("subject %d-%d", req.HitFrom, req.HitTo)
	}
	if req.Midline != "|| ||" {
		t.Errorf("midline %q", req.Midline)
	}
}

func TestProgramSelectsFrames(t *testing.T) {
	o := mustParse(t,
		"--program", "blastx", "--qframe", "-2", "--sframe", "1",
		"--qseq", "MKV", "--sseq", "MRV", "--qfrom", "11", "--qto", "19", "--sfrom", "5", "--sto", "7",
	)
	req := o.Request()
	if req.QueryFrame != -2 || req.HitFrame != 0 || req.Strand != alignfmt.Plus {
		t.Fatalf("frames %+v", req)
	}

	o = mustParse(t, "--program", "blastn", "--strand", "Minus",
		"--qseq", "ACGT", "--sseq", "ACGT", "--qfrom", "1", "--qto", "4", "--sfrom", "9", "--sto", "6")
	if req := o.Request(); req.Strand != alignfmt.Minus || req.QueryFrame != 0 {
		t.Fatalf("blastn request %+v", req)
	}
}

func TestErrors(t *testing.T) {
	cases := map[string][]string{
		"missing seqs":   {"--qseq", "ACGT"},
		"length differs": {"--qseq", "ACGT", "--sseq", "ACG"},
		"bad midline":    {"--qseq", "ACGT", "--sseq", "ACGT", "--midline", "||"},
		"bad strand":     {"--qseq", "A", "--sseq", "A", "--strand", "both"},
		"bad frame":      {"--qseq", "A", "--sseq", "A", "--qframe", "4"},
		"bad program":    {"--qseq", "A", "--sseq", "A", "--program", "psiblast"},
		"zero coord":     {"--qseq", "A", "--sseq", "A", "--qfrom", "0"},
		"positional":     {"--qseq", "A", "--sseq", "A", "extra"},
	}
	for name, args := range cases {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestHelpAndExamples(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h: %v", err)
	}
	if _, err := ParseArgs(newFS(), []string{"--examples"}); !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Errorf("--examples: %v", err)
	}
}
