// core/blastxml/model.go
package blastxml

// Result is the outcome of parsing one BLAST XML report. Exactly one of
// Queries (possibly empty) or Err is meaningful: when Err is set, Queries
// and Report are always zero.
type Result struct {
	Report  ReportInfo
	Queries []QueryResult
	Err     string
}

// OK reports whether the report parsed.
func (r Result) OK() bool { return r.Err == "" }

// ReportInfo carries the report-level header of a BLAST+ XML report.
type ReportInfo struct {
	Program  string
	Version  string
	Database string

	// Report-level query fields; used when an Iteration lacks its own.
	QueryID     string
	QueryDef    string
	QueryLength int

	Params Parameters

	// Database size from the first Iteration_stat block.
	DBSequences int
	DBLetters   int64
}

// Parameters holds the search parameters echoed in BlastOutput_param.
type Parameters struct {
	Matrix    string
	Expect    float64
	GapOpen   int
	GapExtend int
	Filter    string
}

// QueryResult is one Iteration of a (possibly multi-query) report.
type QueryResult struct {
	QueryLength      int
	QueryName        string
	QueryDescription string
	Hits             []Hit // report order
	TotalHits        int
}

// Hit is one subject sequence with at least one HSP.
type Hit struct {
	Num       int
	ID        string
	Accession string
	Subject   string // Hit_def
	Length    int

	HSPs []HSP // report order

	BestEvalue float64
	NumHSPs    int

	QueryCoveragePercent             float64
	SubjectCumulativeCoveragePercent float64
}

// HSP is one local alignment between the query and a subject.
type HSP struct {
	Num             int
	Identities      int
	Positives       int
	AlignmentLength int
	Evalue          float64
	BitScore        float64
	Score           int
	PercentIdentity float64

	// 1-based inclusive, as reported. HitFrom > HitTo on the minus strand.
	QueryFrom, QueryTo int
	HitFrom, HitTo     int

	// Signed reading frames as reported; 0 when absent.
	QueryFrame int
	HitFrame   int

	QuerySeq string
	HitSeq   string
	Midline  string

	// Gaps counts contiguous gap runs in QuerySeq then HitSeq; ReportedGaps
	// is BLAST's own Hsp_gaps column (total gap columns).
	Gaps           int
	GapLengths     []int
	TotalGapLength int
	ReportedGaps   int

	Similarities int

	SubjectCoveragePercent float64
	QueryCoveragePercent   float64
}

// QueryRange is the HSP's query span with endpoints ordered.
func (h HSP) QueryRange() Range { return NewRange(h.QueryFrom, h.QueryTo) }

// HitRange is the HSP's subject span with endpoints ordered.
func (h HSP) HitRange() Range { return NewRange(h.HitFrom, h.HitTo) }

// SubjectReversed reports whether the subject coordinates run backwards.
func (h HSP) SubjectReversed() bool { return h.HitFrom > h.HitTo }
