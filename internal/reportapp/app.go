// internal/reportapp/app.go
package reportapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"moop-core/blastxml"
	"moop-core/fasta"
	"moop-core/program"
	"moop/internal/appcore"
	"moop/internal/cli"
	"moop/internal/clibase"
	"moop/internal/cmdutil"
	"moop/internal/output"
	"moop/internal/version"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("blastviz")

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return appcore.Flush(outw, stderr, 0)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw)
			return appcore.Flush(outw, stderr, 0)
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		fmt.Fprintf(outw, "blastviz version %s\n", version.Version)
		return appcore.Flush(outw, stderr, 0)
	}

	var lengths map[string]int
	if opts.QueryFile != "" {
		lengths, err = fasta.LoadLengthsCtx(parent, opts.QueryFile)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return 130
			}
			fmt.Fprintln(stderr, err)
			return 3
		}
	}

	wf := appcore.NewQueryWriterFactory(opts.Output, opts.Header, opts.TextOptions())
	v := visitor{
		program: program.Parse(opts.Program),
		lengths: lengths,
		maxHits: opts.MaxHits,
		maxHSPs: opts.MaxHSPs,
		keepSeq: wf.NeedSeq(),
		warn: func(format string, a ...any) {
			cmdutil.Warnf(stderr, opts.Quiet, format, a...)
		},
	}
	coreOpts := appcore.Options{
		Inputs:          opts.Reports,
		OutFile:         opts.OutFile,
		NoMatchExitCode: opts.NoMatchExitCode,
	}
	return appcore.Run[output.Query](parent, stdout, stderr, coreOpts, v.visit, hasHits, wf)
}

func hasHits(q output.Query) bool { return len(q.Result.Hits) > 0 }

// visitor turns one report file into renderable queries.
type visitor struct {
	program program.Program // Unknown: take it from the report
	lengths map[string]int
	maxHits int
	maxHSPs int
	keepSeq bool
	warn    func(format string, a ...any)
}

func (v visitor) visit(_ context.Context, path string) ([]output.Query, error) {
	res := blastxml.ParseFile(path)
	if !res.OK() {
		return nil, &appcore.InputError{Input: path, Msg: res.Err}
	}

	prog := v.program
	if prog == program.Unknown {
		prog = program.Parse(res.Report.Program)
		if prog == program.Unknown {
			v.warn("%s: unrecognised program %q; alignments are shown untranslated", path, res.Report.Program)
		}
	}

	out := make([]output.Query, 0, len(res.Queries))
	for _, q := range res.Queries {
		if q.QueryLength == 0 && v.lengths != nil {
			if n, ok := v.lookup(q); ok {
				q = blastxml.WithQueryLength(q, n)
			} else {
				v.warn("%s: no length for query %q in --query file", path, q.QueryName)
			}
		}
		q = blastxml.Truncate(q, v.maxHits, v.maxHSPs)
		if !v.keepSeq {
			q = dropSequences(q)
		}
		out = append(out, output.Query{
			SourceFile: path,
			Program:    prog,
			Report:     res.Report,
			Result:     q,
		})
	}
	return out, nil
}

// lookup finds the submitted length for q. BLAST+ often renames queries to
// Query_N and keeps the FASTA header in the definition line.
func (v visitor) lookup(q blastxml.QueryResult) (int, bool) {
	if f := strings.Fields(q.QueryDescription); len(f) > 0 {
		if n, ok := v.lengths[f[0]]; ok {
			return n, true
		}
	}
	n, ok := v.lengths[q.QueryName]
	return n, ok
}

// dropSequences clears the aligned rows. Truncate has already copied every
// HSP slice, so the parsed result is untouched.
func dropSequences(q blastxml.QueryResult) blastxml.QueryResult {
	for i := range q.Hits {
		for j := range q.Hits[i].HSPs {
			h := &q.Hits[i].HSPs[j]
			h.QuerySeq, h.HitSeq, h.Midline = "", "", ""
		}
	}
	return q
}
