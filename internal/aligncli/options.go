package aligncli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"moop-core/alignfmt"
	"moop-core/blastxml"
	"moop-core/program"
	"moop/internal/clibase"
	"moop/internal/cliutil"
)

// Options describes one alignment given on the command line.
type Options struct {
	clibase.Common

	QuerySeq string
	HitSeq   string
	Midline  string

	QueryFrom, QueryTo int
	HitFrom, HitTo     int

	Strand     string
	QueryFrame int
	HitFrame   int
	Length     int

	Program string
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "Query/Sbjct alignment formatter", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s --qseq SEQ --sseq SEQ --qfrom N --qto N --sfrom N --sto N [options]\n", name)

		_, _ = fmt.Fprintln(out, "\nAlignment:")
		_, _ = fmt.Fprintln(out, "      --qseq string           Aligned query row, gaps as '-' [required]")
		_, _ = fmt.Fprintln(out, "      --sseq string           Aligned subject row, gaps as '-' [required]")
		_, _ = fmt.Fprintln(out, "      --midline string        Match row [derived: '|' on identical columns]")
		_, _ = fmt.Fprintln(out, "      --qfrom, --qto int      Query coordinates (1-based, inclusive)")
		_, _ = fmt.Fprintln(out, "      --sfrom, --sto int      Subject coordinates (1-based, inclusive)")
		_, _ = fmt.Fprintf(out, "      --length int            Alignment length (0=length of --qseq) [%s]\n", def("length"))

		_, _ = fmt.Fprintln(out, "\nFrames:")
		_, _ = fmt.Fprintf(out, "      --strand string         Subject strand of an untranslated alignment: Plus | Minus [%s]\n", def("strand"))
		_, _ = fmt.Fprintf(out, "      --qframe int            Query frame (0=untranslated) [%s]\n", def("qframe"))
		_, _ = fmt.Fprintf(out, "      --sframe int            Subject frame (0=untranslated) [%s]\n", def("sframe"))
		_, _ = fmt.Fprintln(out, "      --program string        Select frames the way a BLAST program reports them")
	})
	return fs
}

// PrintExamples prints a tiny quickstart for blastviz-align.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "blastviz-align", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Format one HSP without a report.")
		_, _ = fmt.Fprintln(w, "\nExample (blastn, minus strand):")
		_, _ = fmt.Fprintln(w, "  blastviz-align \\")
		_, _ = fmt.Fprintln(w, "    --qseq GTACGTACGT --sseq GTACGTACGT \\")
		_, _ = fmt.Fprintln(w, "    --qfrom 3 --qto 12 --sfrom 30 --sto 21 --strand Minus")
		_, _ = fmt.Fprintln(w, "\nExample (blastx, frame -2):")
		_, _ = fmt.Fprintln(w, "  blastviz-align --program blastx --qframe -2 \\")
		_, _ = fmt.Fprintln(w, "    --qseq MKV --sseq MRV --qfrom 11 --qto 19 --sfrom 5 --sto 7")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help bool

	clibase.Register(fs, &o.Common)

	fs.StringVar(&o.QuerySeq, "qseq", "", "aligned query row [required]")
	fs.StringVar(&o.HitSeq, "sseq", "", "aligned subject row [required]")
	fs.StringVar(&o.Midline, "midline", "", "match row")
	fs.IntVar(&o.QueryFrom, "qfrom", 1, "query start")
	fs.IntVar(&o.QueryTo, "qto", 0, "query end")
	fs.IntVar(&o.HitFrom, "sfrom", 1, "subject start")
	fs.IntVar(&o.HitTo, "sto", 0, "subject end")
	fs.IntVar(&o.Length, "length", 0, "alignment length (0=len(qseq)) [0]")

	fs.StringVar(&o.Strand, "strand", string(alignfmt.Plus), "subject strand: Plus | Minus [Plus]")
	fs.IntVar(&o.QueryFrame, "qframe", 0, "query frame [0]")
	fs.IntVar(&o.HitFrame, "sframe", 0, "subject frame [0]")
	fs.StringVar(&o.Program, "program", "", "BLAST program")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&help, "help", false, "show this help [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if o.Examples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	if len(posArgs) > 0 {
		return o, fmt.Errorf("unexpected argument %q", posArgs[0])
	}
	return o, Validate(o)
}

// Validate checks the alignment flags.
func Validate(o Options) error {
	if o.QuerySeq == "" || o.HitSeq == "" {
		return errors.New("--qseq and --sseq are required")
	}
	if len(o.QuerySeq) != len(o.HitSeq) {
		return fmt.Errorf("--qseq (%d columns) and --sseq (%d columns) differ in length", len(o.QuerySeq), len(o.HitSeq))
	}
	if o.Midline != "" && len(o.Midline) != len(o.QuerySeq) {
		return fmt.Errorf("--midline has %d columns, want %d", len(o.Midline), len(o.QuerySeq))
	}
	if o.Length < 0 {
		return errors.New("--length must be ≥ 0")
	}
	if o.QueryFrom < 1 || o.HitFrom < 1 || o.QueryTo < 0 || o.HitTo < 0 {
		return errors.New("coordinates are 1-based")
	}
	if !strings.EqualFold(o.Strand, string(alignfmt.Plus)) && !strings.EqualFold(o.Strand, string(alignfmt.Minus)) {
		return fmt.Errorf("invalid --strand %q", o.Strand)
	}
	if o.QueryFrame < -3 || o.QueryFrame > 3 || o.HitFrame < -3 || o.HitFrame > 3 {
		return errors.New("frames must be between -3 and 3")
	}
	if o.Program != "" && program.Parse(o.Program) == program.Unknown {
		return fmt.Errorf("unknown --program %q", o.Program)
	}
	return nil
}

// Request builds the formatter input. A missing --qto/--sto is derived
// from the residues on that row; a missing midline marks identical columns.
func (o Options) Request() alignfmt.Request {
	mid := o.Midline
	if mid == "" {
		mid = identityMidline(o.QuerySeq, o.HitSeq)
	}
	qTo, sTo := o.QueryTo, o.HitTo
	if qTo == 0 {
		qTo = o.QueryFrom + span(o.QuerySeq, o.QueryFrame) - 1
	}
	if sTo == 0 {
		if o.minus() && o.HitFrame == 0 {
			sTo = max(o.HitFrom-span(o.HitSeq, 0)+1, 1)
		} else {
			sTo = o.HitFrom + span(o.HitSeq, o.HitFrame) - 1
		}
	}

	if o.Program != "" {
		hsp := blastxml.HSP{
			AlignmentLength: o.Length,
			QuerySeq:        o.QuerySeq, HitSeq: o.HitSeq, Midline: mid,
			QueryFrom: o.QueryFrom, QueryTo: qTo,
			HitFrom: o.HitFrom, HitTo: sTo,
			QueryFrame: o.QueryFrame, HitFrame: o.HitFrame,
		}
		if o.minus() && hsp.HitFrame == 0 {
			hsp.HitFrame = -1
		}
		return alignfmt.FromHSP(program.Parse(o.Program), hsp)
	}

	n := o.Length
	if n == 0 {
		n = len(o.QuerySeq)
	}
	strand := alignfmt.Plus
	if o.minus() {
		strand = alignfmt.Minus
	}
	return alignfmt.Request{
		AlignmentLength: n,
		QuerySeq:        o.QuerySeq, Midline: mid, HitSeq: o.HitSeq,
		QueryFrom: o.QueryFrom, QueryTo: qTo,
		HitFrom: o.HitFrom, HitTo: sTo,
		Strand:     strand,
		QueryFrame: o.QueryFrame,
		HitFrame:   o.HitFrame,
	}
}

func (o Options) minus() bool { return strings.EqualFold(o.Strand, string(alignfmt.Minus)) }

func identityMidline(q, s string) string {
	b := make([]byte, len(q))
	for i := range b {
		if i < len(s) && q[i] == s[i] && q[i] != '-' {
			b[i] = '|'
		} else {
			b[i] = ' '
		}
	}
	return string(b)
}

// span is the number of positions a row covers on its own sequence.
func span(row string, frame int) int {
	n := len(row) - strings.Count(row, "-")
	if frame != 0 {
		n *= 3
	}
	return n
}
