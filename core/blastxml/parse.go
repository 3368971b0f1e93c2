// core/blastxml/parse.go
package blastxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Error texts surfaced in Result.Err.
const (
	ErrMalformed     = "Failed to parse BLAST XML output"
	ErrTraversalText = "XML parsing error: "
)

var errNoRoot = errors.New("no root element")

// Parse converts a BLAST+ XML (outfmt 5) report into per-query results.
// It never panics: failures are reported through Result.Err.
func Parse(report string) Result {
	return ParseReader(strings.NewReader(report))
}

// ParseReader is Parse over a stream.
func ParseReader(r io.Reader) (res Result) {
	defer func() {
		if v := recover(); v != nil {
			res = Result{Err: fmt.Sprintf("%s%v", ErrTraversalText, v)}
		}
	}()

	p := &parser{d: xml.NewDecoder(r)}
	if err := p.run(); err != nil {
		return Result{Err: errText(err)}
	}
	return Result{Report: p.report, Queries: p.queries}
}

func errText(err error) string {
	var se *xml.SyntaxError
	switch {
	case errors.As(err, &se),
		errors.Is(err, errNoRoot),
		errors.Is(err, io.ErrUnexpectedEOF):
		return ErrMalformed
	}
	return ErrTraversalText + err.Error()
}

type parser struct {
	d       *xml.Decoder
	report  ReportInfo
	statSet bool
	queries []QueryResult
}

func (p *parser) run() error {
	sawRoot := false
	for {
		tok, err := p.d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		if _, ok := tok.(xml.StartElement); !ok {
			continue
		}
		sawRoot = true
		if err := p.reportScope(); err != nil {
			return err
		}
	}
	if !sawRoot {
		return errNoRoot
	}
	return nil
}

// children hands every direct child of the current element to fn, which must
// consume it, and returns once the current element closes.
func (p *parser) children(fn func(xml.StartElement) error) error {
	for {
		tok, err := p.d.Token()
		if err == io.EOF {
			return io.ErrUnexpectedEOF
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := fn(t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// reportScope walks everything outside an Iteration.
func (p *parser) reportScope() error {
	return p.children(func(se xml.StartElement) error {
		var (
			s   string
			err error
		)
		switch se.Name.Local {
		case "Iteration":
			return p.iteration()
		case "BlastOutput_program":
			s, err = p.leaf()
			p.report.Program = s
		case "BlastOutput_version":
			s, err = p.leaf()
			p.report.Version = s
		case "BlastOutput_db":
			s, err = p.leaf()
			p.report.Database = s
		case "BlastOutput_query-ID":
			s, err = p.leaf()
			p.report.QueryID = s
		case "BlastOutput_query-def":
			s, err = p.leaf()
			p.report.QueryDef = s
		case "BlastOutput_query-len":
			s, err = p.leaf()
			p.report.QueryLength = atoi(s)
		case "Parameters_matrix":
			s, err = p.leaf()
			p.report.Params.Matrix = s
		case "Parameters_expect":
			s, err = p.leaf()
			p.report.Params.Expect = atof(s)
		case "Parameters_gap-open":
			s, err = p.leaf()
			p.report.Params.GapOpen = atoi(s)
		case "Parameters_gap-extend":
			s, err = p.leaf()
			p.report.Params.GapExtend = atoi(s)
		case "Parameters_filter":
			s, err = p.leaf()
			p.report.Params.Filter = s
		default:
			return p.reportScope()
		}
		return err
	})
}

// iteration builds one QueryResult. Query fields are read from direct
// children; Hit elements are collected at any depth.
func (p *parser) iteration() error {
	var (
		q      QueryResult
		hasLen bool
		hasID  bool
		hasDef bool
	)
	var scan func(direct bool) error
	scan = func(direct bool) error {
		return p.children(func(se xml.StartElement) error {
			var (
				s   string
				err error
			)
			name := se.Name.Local
			switch {
			case name == "Hit":
				h, keep, err := p.hit()
				if err != nil {
					return err
				}
				if keep {
					q.Hits = append(q.Hits, h)
				}
				return nil
			case direct && name == "Iteration_query-len":
				s, err = p.leaf()
				q.QueryLength, hasLen = atoi(s), true
			case direct && name == "Iteration_query-ID":
				s, err = p.leaf()
				q.QueryName, hasID = s, true
			case direct && name == "Iteration_query-def":
				s, err = p.leaf()
				q.QueryDescription, hasDef = s, true
			case name == "Statistics_db-num":
				s, err = p.leaf()
				if !p.statSet {
					p.report.DBSequences = atoi(s)
				}
			case name == "Statistics_db-len":
				s, err = p.leaf()
				if !p.statSet {
					p.report.DBLetters = int64(atof(s))
					p.statSet = true
				}
			default:
				return scan(false)
			}
			return err
		})
	}
	if err := scan(true); err != nil {
		return err
	}

	if !hasLen {
		q.QueryLength = p.report.QueryLength
	}
	if !hasID {
		q.QueryName = p.report.QueryID
	}
	if !hasDef {
		q.QueryDescription = p.report.QueryDef
	}
	p.queries = append(p.queries, finishQuery(q))
	return nil
}

// hit builds one Hit. keep is false when the hit carries no HSP.
func (p *parser) hit() (Hit, bool, error) {
	h := Hit{BestEvalue: math.Inf(1)}
	var scan func(direct bool) error
	scan = func(direct bool) error {
		return p.children(func(se xml.StartElement) error {
			var (
				s   string
				err error
			)
			name := se.Name.Local
			switch {
			case name == "Hsp":
				var raw rawHSP
				if err := p.d.DecodeElement(&raw, &se); err != nil {
					return err
				}
				hsp := raw.toHSP()
				if hsp.Evalue < h.BestEvalue {
					h.BestEvalue = hsp.Evalue
				}
				h.HSPs = append(h.HSPs, hsp)
				return nil
			case direct && name == "Hit_num":
				s, err = p.leaf()
				h.Num = atoi(s)
			case direct && name == "Hit_id":
				s, err = p.leaf()
				h.ID = s
			case direct && name == "Hit_def":
				s, err = p.leaf()
				h.Subject = s
			case direct && name == "Hit_accession":
				s, err = p.leaf()
				h.Accession = s
			case direct && name == "Hit_len":
				s, err = p.leaf()
				h.Length = atoi(s)
			default:
				return scan(false)
			}
			return err
		})
	}
	if err := scan(true); err != nil {
		return Hit{}, false, err
	}
	if len(h.HSPs) == 0 {
		return Hit{}, false, nil
	}
	return finishHit(h), true, nil
}

// leaf reads the trimmed character data of the current element.
func (p *parser) leaf() (string, error) {
	var b strings.Builder
	for {
		tok, err := p.d.Token()
		if err == io.EOF {
			return "", io.ErrUnexpectedEOF
		}
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.CharData:
			b.Write(t)
		case xml.StartElement:
			if err := p.d.Skip(); err != nil {
				return "", err
			}
		case xml.EndElement:
			return strings.TrimSpace(b.String()), nil
		}
	}
}

// rawHSP mirrors the Hsp element. Every field is text so malformed numbers
// degrade to zero instead of failing the decode.
type rawHSP struct {
	Num        string `xml:"Hsp_num"`
	BitScore   string `xml:"Hsp_bit-score"`
	Score      string `xml:"Hsp_score"`
	Evalue     string `xml:"Hsp_evalue"`
	QueryFrom  string `xml:"Hsp_query-from"`
	QueryTo    string `xml:"Hsp_query-to"`
	HitFrom    string `xml:"Hsp_hit-from"`
	HitTo      string `xml:"Hsp_hit-to"`
	QueryFrame string `xml:"Hsp_query-frame"`
	HitFrame   string `xml:"Hsp_hit-frame"`
	Identity   string `xml:"Hsp_identity"`
	Positive   string `xml:"Hsp_positive"`
	Gaps       string `xml:"Hsp_gaps"`
	AlignLen   string `xml:"Hsp_align-len"`
	QSeq       string `xml:"Hsp_qseq"`
	HSeq       string `xml:"Hsp_hseq"`
	Midline    string `xml:"Hsp_midline"`
}

func (r rawHSP) toHSP() HSP {
	h := HSP{
		Num:             atoi(r.Num),
		Identities:      atoi(r.Identity),
		Positives:       atoi(r.Positive),
		AlignmentLength: atoi(r.AlignLen),
		Evalue:          atof(r.Evalue),
		BitScore:        atof(r.BitScore),
		Score:           atoi(r.Score),
		QueryFrom:       atoi(r.QueryFrom),
		QueryTo:         atoi(r.QueryTo),
		HitFrom:         atoi(r.HitFrom),
		HitTo:           atoi(r.HitTo),
		QueryFrame:      atoi(r.QueryFrame),
		HitFrame:        atoi(r.HitFrame),
		ReportedGaps:    atoi(r.Gaps),
		QuerySeq:        strings.TrimSpace(r.QSeq),
		HitSeq:          strings.TrimSpace(r.HSeq),
		// leading/trailing blanks are significant in the midline
		Midline: strings.Trim(r.Midline, "\r\n"),
	}
	h.PercentIdentity = PercentIdentity(h.Identities, h.AlignmentLength)
	h.GapLengths = GapRuns(h.QuerySeq, h.HitSeq)
	h.Gaps = len(h.GapLengths)
	h.TotalGapLength = sum(h.GapLengths)
	h.Similarities = Similarities(h.Midline, h.Identities)
	return h
}

// finishHit fills statistics that depend on the subject length.
func finishHit(h Hit) Hit {
	h.NumHSPs = len(h.HSPs)
	ranges := make([]Range, 0, len(h.HSPs))
	for i := range h.HSPs {
		hsp := &h.HSPs[i]
		hsp.SubjectCoveragePercent = SpanPercent(hsp.HitFrom, hsp.HitTo, h.Length)
		ranges = append(ranges, hsp.HitRange())
	}
	h.SubjectCumulativeCoveragePercent = MergedCoverage(ranges, h.Length)
	return h
}

// finishQuery fills statistics that depend on the query length.
func finishQuery(q QueryResult) QueryResult {
	for i := range q.Hits {
		h := &q.Hits[i]
		ranges := make([]Range, 0, len(h.HSPs))
		for j := range h.HSPs {
			hsp := &h.HSPs[j]
			hsp.QueryCoveragePercent = SpanPercent(hsp.QueryFrom, hsp.QueryTo, q.QueryLength)
			ranges = append(ranges, hsp.QueryRange())
		}
		h.QueryCoveragePercent = MergedCoverage(ranges, q.QueryLength)
	}
	q.TotalHits = len(q.Hits)
	return q
}

func atoi(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// BLAST occasionally writes integral columns in float form
	f := atof(s)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}

func atof(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
