// internal/cli/options_test.go
package cli

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"moop/internal/clibase"
)

func newFS() *flag.FlagSet {
	fs := NewFlagSet("test")
	fs.SetOutput(io.Discard)
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "report.xml")
	if o.Output != "text" || !o.Header || !o.Alignments || o.NoMatchExitCode != 1 {
		t.Errorf("bad defaults %+v", o)
	}
	if o.SubjectWidth != 60 || o.MaxHits != 0 || o.MaxHSPs != 0 {
		t.Errorf("bad report defaults %+v", o)
	}
	if len(o.Reports) != 1 || o.Reports[0] != "report.xml" {
		t.Errorf("reports=%v", o.Reports)
	}
}

func TestFlagsAroundPositionals(t *testing.T) {
	o := mustParse(t,
		"a.xml", "-o", "tsv", "b.xml", "--no-header", "--max-hits", "5",
		"--program", "BLASTX", "--no-alignments", "-q", "--color",
	)
	if o.Output != "tsv" || o.Header || o.Alignments || o.MaxHits != 5 {
		t.Errorf("flags not applied: %+v", o)
	}
	if o.Program != "BLASTX" || !o.Quiet || !o.Color {
		t.Errorf("shared flags not applied: %+v", o)
	}
	if len(o.Reports) != 2 || o.Reports[1] != "b.xml" {
		t.Errorf("reports=%v", o.Reports)
	}
	to := o.TextOptions()
	if to.Alignments || !to.Color || to.SubjectWidth != 60 {
		t.Errorf("text options %+v", to)
	}
}

func TestStdinReport(t *testing.T) {
	o := mustParse(t, "-")
	if len(o.Reports) != 1 || o.Reports[0] != "-" {
		t.Fatalf("reports=%v", o.Reports)
	}
}

func TestErrors(t *testing.T) {
	cases := map[string][]string{
		"no reports":      {"-o", "tsv"},
		"bad output":      {"-o", "xml", "a.xml"},
		"bad program":     {"--program", "psiblast", "a.xml"},
		"negative hits":   {"--max-hits", "-1", "a.xml"},
		"negative hsps":   {"--max-hsps", "-2", "a.xml"},
		"zero width":      {"--subject-width", "0", "a.xml"},
		"exit code range": {"--no-match-exit-code", "300", "a.xml"},
		"stdin twice":     {"-", "-"},
		"query on stdin":  {"--query", "-", "-"},
		"unknown flag":    {"--frobnicate", "a.xml"},
	}
	for name, args := range cases {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("%s: expected error for %v", name, args)
		}
	}
}

func TestHelpVersionExamples(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("-h: %v", err)
	}
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Errorf("--version: %v %+v", err, o)
	}
	if _, err := ParseArgs(newFS(), []string{"--examples"}); !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Errorf("--examples: %v", err)
	}
}

func TestUsageListsFormats(t *testing.T) {
	fs := newFS()
	_, _ = ParseArgs(fs, []string{"-h"})
	var buf bytes.Buffer
	fs.SetOutput(&buf)
	fs.Usage()
	for _, want := range []string{"blastviz", "text | tsv | json | jsonl | gff | fasta", "--max-hsps", "--quiet"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("usage missing %q", want)
		}
	}
}

func TestExamplesText(t *testing.T) {
	var buf bytes.Buffer
	PrintExamples(&buf)
	if !strings.HasPrefix(buf.String(), "blastviz quickstart") || !strings.Contains(buf.String(), "--help") {
		t.Fatalf("examples: %q", buf.String())
	}
}
