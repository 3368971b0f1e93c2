// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"moop-core/program"
	"moop/internal/clibase"
	"moop/internal/cliutil"
	"moop/internal/output"
)

// Options holds all blastviz flags and arguments.
type Options struct {
	clibase.Common

	Reports []string

	// Output
	Output       string
	OutFile      string
	Header       bool // true unless --no-header
	Alignments   bool // true unless --no-alignments
	SubjectWidth int

	// Report shaping
	Program   string
	QueryFile string
	MaxHits   int
	MaxHSPs   int

	NoMatchExitCode int
}

// Usage installs the blastviz help text on fs.
func Usage(fs *flag.FlagSet) {
	clibase.UsageCommon(fs, "blastviz", "BLAST XML report viewer", func(out io.Writer, def func(string) string) {
		fmt.Fprintln(out, "Usage:")
		fmt.Fprintln(out, "  blastviz [options] report.xml [more.xml ...]    ('-' reads STDIN; .gz/.xz/.zst are fine)")

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintf(out, "      --program string        Override the BLAST program (%s) [auto]\n", strings.Join(programNames(), " | "))
		fmt.Fprintln(out, "      --query file            Submitted query FASTA; fills missing query lengths")

		fmt.Fprintln(out, "\nReport:")
		fmt.Fprintf(out, "      --max-hits int          Keep the first N hits per query (0=all) [%s]\n", def("max-hits"))
		fmt.Fprintf(out, "      --max-hsps int          Keep the first N HSPs per hit (0=all) [%s]\n", def("max-hsps"))
		fmt.Fprintf(out, "      --subject-width int     Truncate subject names in the hit table [%s]\n", def("subject-width"))
		fmt.Fprintf(out, "      --no-alignments         Omit Query/Sbjct blocks from text output [%s]\n", def("no-alignments"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: %s [%s]\n", strings.Join(output.Formats, " | "), def("output"))
		fmt.Fprintln(out, "      --out file              Write to file instead of STDOUT (.gz compresses)")
		fmt.Fprintf(out, "      --no-header             Suppress TSV/GFF header [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no query has a hit [%s]\n", def("no-match-exit-code"))
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader, noAlign bool

	clibase.Register(fs, &opt.Common)

	fs.StringVar(&opt.Program, "program", "", "BLAST program override (default: from the report)")
	fs.StringVar(&opt.QueryFile, "query", "", "submitted query FASTA")

	fs.IntVar(&opt.MaxHits, "max-hits", 0, "keep the first N hits per query (0=all) [0]")
	fs.IntVar(&opt.MaxHSPs, "max-hsps", 0, "keep the first N HSPs per hit (0=all) [0]")
	fs.IntVar(&opt.SubjectWidth, "subject-width", output.DefaultOptions.SubjectWidth, "truncate subject names in the hit table [60]")
	fs.BoolVar(&noAlign, "no-alignments", false, "omit alignment blocks [false]")

	fs.StringVar(&opt.Output, "output", output.FormatText, "output format [text]")
	fs.StringVar(&opt.Output, "o", output.FormatText, "alias of --output")
	fs.StringVar(&opt.OutFile, "out", "", "write to file instead of STDOUT")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no query has a hit [1]")

	fs.BoolVar(&help, "h", false, "show this help message")
	fs.BoolVar(&help, "help", false, "show this help message")
	Usage(fs)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	posArgs = append(posArgs, fs.Args()...)
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader
	opt.Alignments = !noAlign

	exp, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Reports = exp
	return opt, Validate(opt)
}

// Validate applies the blastviz invariants.
func Validate(o Options) error {
	if len(o.Reports) == 0 {
		return errors.New("at least one BLAST XML report is required")
	}
	stdin := 0
	for _, r := range o.Reports {
		if r == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New("'-' (STDIN) may be given only once")
	}
	if o.QueryFile == "-" && stdin > 0 {
		return errors.New("--query - conflicts with reading a report from STDIN")
	}
	if !validFormat(o.Output) {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.Program != "" && program.Parse(o.Program) == program.Unknown {
		return fmt.Errorf("unknown --program %q", o.Program)
	}
	if o.MaxHits < 0 {
		return errors.New("--max-hits must be ≥ 0")
	}
	if o.MaxHSPs < 0 {
		return errors.New("--max-hsps must be ≥ 0")
	}
	if o.SubjectWidth < 1 {
		return errors.New("--subject-width must be ≥ 1")
	}
	return clibase.ValidateExitCode(o.NoMatchExitCode)
}

// TextOptions maps the flags onto renderer options.
func (o Options) TextOptions() output.Options {
	t := output.DefaultOptions
	t.Alignments = o.Alignments
	t.Color = o.Color
	t.SubjectWidth = o.SubjectWidth
	return t
}

func validFormat(f string) bool {
	for _, k := range output.Formats {
		if f == k {
			return true
		}
	}
	return false
}

func programNames() []string {
	out := make([]string, len(program.All))
	for i, p := range program.All {
		out[i] = p.String()
	}
	return out
}

// PrintExamples writes the blastviz quickstart.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "blastviz", func(w io.Writer) {
		fmt.Fprintln(w, "  # Human-readable report with alignments")
		fmt.Fprintln(w, "  blastviz results.xml")
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "  # One row per HSP, first 5 hits per query")
		fmt.Fprintln(w, "  blastviz -o tsv --max-hits 5 results.xml > hsps.tsv")
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "  # Genome-browser track from a compressed tblastn report")
		fmt.Fprintln(w, "  blastviz -o gff --out hits.gff3 tblastn.xml.gz")
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "  # Pipe from BLAST+ and fill query lengths from the submitted FASTA")
		fmt.Fprintln(w, "  blastn -outfmt 5 -query q.fa -db nt | blastviz --query q.fa -")
	})
}
