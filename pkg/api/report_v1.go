// pkg/api/report_v1.go
package api

// QueryV1 is the stable JSON/JSONL schema for one query of a BLAST report.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type QueryV1 struct {
	SourceFile       string  `json:"source_file,omitempty"`
	Program          string  `json:"program,omitempty"`
	Database         string  `json:"database,omitempty"`
	QueryName        string  `json:"query_name"`
	QueryDescription string  `json:"query_description"`
	QueryLength      int     `json:"query_length"`
	TotalHits        int     `json:"total_hits"`
	Hits             []HitV1 `json:"hits"`
}

// HitV1 is one subject sequence with its HSPs in report order.
type HitV1 struct {
	Num                              int     `json:"num,omitempty"`
	ID                               string  `json:"id"`
	Accession                        string  `json:"accession,omitempty"`
	Subject                          string  `json:"subject"`
	Length                           int     `json:"length"`
	BestEvalue                       float64 `json:"best_evalue"`
	NumHSPs                          int     `json:"num_hsps"`
	QueryCoveragePercent             float64 `json:"query_coverage_percent"`
	SubjectCumulativeCoveragePercent float64 `json:"subject_cumulative_coverage_percent"`
	HSPs                             []HSPV1 `json:"hsps"`
}

// HSPV1 is one local alignment.
type HSPV1 struct {
	Num                    int     `json:"num,omitempty"`
	Identities             int     `json:"identities"`
	Positives              int     `json:"positives,omitempty"`
	AlignmentLength        int     `json:"alignment_length"`
	Evalue                 float64 `json:"evalue"`
	BitScore               float64 `json:"bit_score"`
	Score                  int     `json:"score"`
	PercentIdentity        float64 `json:"percent_identity"`
	QueryFrom              int     `json:"query_from"`
	QueryTo                int     `json:"query_to"`
	HitFrom                int     `json:"hit_from"`
	HitTo                  int     `json:"hit_to"`
	QueryFrame             int     `json:"query_frame,omitempty"`
	HitFrame               int     `json:"hit_frame,omitempty"`
	QuerySeq               string  `json:"query_seq"`
	HitSeq                 string  `json:"hit_seq"`
	Midline                string  `json:"midline"`
	Gaps                   int     `json:"gaps"`
	GapLengths             []int   `json:"gap_lengths,omitempty"`
	TotalGapLength         int     `json:"total_gap_length"`
	Similarities           int     `json:"similarities"`
	SubjectCoveragePercent float64 `json:"subject_coverage_percent"`
	QueryCoveragePercent   float64 `json:"query_coverage_percent"`
	ScoreBand              string  `json:"score_band,omitempty"`
}
