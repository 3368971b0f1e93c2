// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gedex/inflector"

	"moop-core/alignfmt"
	"moop-core/blastxml"
	"moop-core/program"
)

// textRenderer holds per-run state for the text report.
type textRenderer struct {
	w          io.Writer
	opt        Options
	lastSource string
	started    bool
}

func newTextRenderer(w io.Writer, opt Options) *textRenderer {
	if opt.SubjectWidth <= 0 {
		opt.SubjectWidth = DefaultOptions.SubjectWidth
	}
	return &textRenderer{w: w, opt: opt}
}

// StreamText renders queries as they arrive. A report header is printed
// whenever the source file changes.
func StreamText(w io.Writer, in <-chan Query, opt Options) error {
	r := newTextRenderer(w, opt)
	for q := range in {
		if err := r.query(q); err != nil {
			return err
		}
	}
	return nil
}

// WriteText renders a slice of queries.
func WriteText(w io.Writer, list []Query, opt Options) error {
	r := newTextRenderer(w, opt)
	for _, q := range list {
		if err := r.query(q); err != nil {
			return err
		}
	}
	return nil
}

func (r *textRenderer) paint(b Band, s string) string {
	c := color.New(b.Attr)
	if r.opt.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func (r *textRenderer) query(q Query) error {
	var b strings.Builder
	if !r.started || q.SourceFile != r.lastSource {
		if r.started {
			b.WriteString("\n")
		}
		writeReportHeader(&b, q)
		r.started, r.lastSource = true, q.SourceFile
	}

	res := q.Result
	fmt.Fprintf(&b, "\nQuery= %s\n", queryLabel(res))
	if res.QueryLength > 0 {
		fmt.Fprintf(&b, "Length=%d %s\n", res.QueryLength, q.Program.QueryUnit())
	}

	s := blastxml.Summarize(res)
	if !s.HasTopHit {
		b.WriteString("\n***** No hits found *****\n")
		_, err := io.WriteString(r.w, b.String())
		return err
	}
	fmt.Fprintf(&b, "Hits: %d  HSPs: %d  Best E-value: %s  Best identity: %s%%\n",
		s.Hits, s.HSPs, FormatEvalue(s.BestEvalue), FormatPercent(s.TopIdentity))

	r.hitTable(&b, res)
	for _, h := range res.Hits {
		r.hit(&b, q, h)
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

func writeReportHeader(b *strings.Builder, q Query) {
	rep := q.Report
	if q.SourceFile != "" {
		fmt.Fprintf(b, "# %s\n", q.SourceFile)
	}
	version := rep.Version
	if version == "" {
		version = q.Program.String()
	}
	fmt.Fprintf(b, "%s\n", version)
	if rep.Database != "" {
		fmt.Fprintf(b, "Database: %s", rep.Database)
		if rep.DBSequences > 0 {
			fmt.Fprintf(b, " (%s; %s total letters)",
				countNoun(rep.DBSequences, "sequence"), humanize.Comma(rep.DBLetters))
		}
		b.WriteString("\n")
	}
	if p := rep.Params; p.Matrix != "" || p.Expect != 0 {
		var parts []string
		if p.Matrix != "" {
			parts = append(parts, "Matrix: "+p.Matrix)
		}
		if p.Expect != 0 {
			parts = append(parts, "Expect: "+strconv.FormatFloat(p.Expect, 'g', -1, 64))
		}
		if p.GapOpen != 0 || p.GapExtend != 0 {
			parts = append(parts, fmt.Sprintf("Gap costs: %d/%d", p.GapOpen, p.GapExtend))
		}
		if p.Filter != "" {
			parts = append(parts, "Filter: "+p.Filter)
		}
		fmt.Fprintf(b, "%s\n", strings.Join(parts, "  "))
	}
}

func queryLabel(res blastxml.QueryResult) string {
	switch {
	case res.QueryName == "":
		return res.QueryDescription
	case res.QueryDescription == "":
		return res.QueryName
	}
	return res.QueryName + " " + res.QueryDescription
}

func (r *textRenderer) hitTable(b *strings.Builder, res blastxml.QueryResult) {
	b.WriteString("\nSequences producing significant alignments:\n")
	fmt.Fprintf(b, "%4s  %-*s  %8s  %9s  %4s\n", "#", r.opt.SubjectWidth, "Subject", "Cover", "E-value", "HSPs")
	for i, h := range res.Hits {
		subject := h.Subject
		if len(subject) > r.opt.SubjectWidth {
			subject = subject[:r.opt.SubjectWidth]
		}
		cover := fmt.Sprintf("%7.2f%%", h.QueryCoveragePercent)
		fmt.Fprintf(b, "%4d  %-*s  %s  %9s  %4d\n",
			hitNum(h, i), r.opt.SubjectWidth, subject,
			r.paint(CoverageBand(h.QueryCoveragePercent), cover),
			FormatEvalue(h.BestEvalue), h.NumHSPs)
	}
}

func (r *textRenderer) hit(b *strings.Builder, q Query, h blastxml.Hit) {
	fmt.Fprintf(b, "\n> %s %s\n", h.ID, h.Subject)
	fmt.Fprintf(b, "Length=%d  Best E-value=%s  %s  Query coverage=%s%%  Subject coverage=%s%%\n",
		h.Length, FormatEvalue(h.BestEvalue), countNoun(h.NumHSPs, "HSP"),
		FormatPercent(h.QueryCoveragePercent), FormatPercent(h.SubjectCumulativeCoveragePercent))

	for j, hsp := range h.HSPs {
		num := hsp.Num
		if num <= 0 {
			num = j + 1
		}
		score := fmt.Sprintf("Score = %s bits (%d)", strconv.FormatFloat(hsp.BitScore, 'f', 1, 64), hsp.Score)
		fmt.Fprintf(b, "\n HSP %d  %s, Expect = %s\n", num, r.paint(ScoreBand(hsp.BitScore), score), FormatEvalue(hsp.Evalue))
		fmt.Fprintf(b, " Identities = %d/%d (%s%%), Similarities = %d, Gaps = %d",
			hsp.Identities, hsp.AlignmentLength, FormatPercent(hsp.PercentIdentity), hsp.Similarities, hsp.Gaps)
		if hsp.Gaps > 0 {
			fmt.Fprintf(b, " (lengths: %s, total: %d)", intsCSV(hsp.GapLengths), hsp.TotalGapLength)
		}
		b.WriteString("\n")
		if fr := frameLabel(q.Program, hsp); fr != "" {
			fmt.Fprintf(b, " %s\n", fr)
		}
		fmt.Fprintf(b, " Query coverage (this HSP) = %s%% (%d/%d), Subject coverage (this HSP) = %s%% (%d/%d)\n",
			FormatPercent(hsp.QueryCoveragePercent), hsp.QueryRange().Len(), q.Result.QueryLength,
			FormatPercent(hsp.SubjectCoveragePercent), hsp.HitRange().Len(), h.Length)
		if r.opt.Alignments {
			b.WriteString(alignfmt.Format(alignfmt.FromHSP(q.Program, hsp)))
		}
	}
}

func frameLabel(p program.Program, h blastxml.HSP) string {
	req := alignfmt.FromHSP(p, h)
	switch {
	case req.QueryFrame != 0 && req.HitFrame != 0:
		return fmt.Sprintf("Frame = %+d/%+d", req.QueryFrame, req.HitFrame)
	case req.QueryFrame != 0:
		return fmt.Sprintf("Frame = %+d", req.QueryFrame)
	case req.HitFrame != 0:
		return fmt.Sprintf("Frame = %+d", req.HitFrame)
	case p.QueryMolecule() == program.Nucleotide && p.SubjectMolecule() == program.Nucleotide:
		return "Strand = Plus/" + string(req.Strand)
	}
	return ""
}

// countNoun formats n with a singular or plural noun ("1 HSP", "3 HSPs").
func countNoun(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + inflector.Pluralize(noun)
}

func intsCSV(a []int) string {
	if len(a) == 0 {
		return ""
	}
	ss := make([]string, len(a))
	for i, v := range a {
		ss[i] = strconv.Itoa(v)
	}
	return strings.Join(ss, ",")
}
