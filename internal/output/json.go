// internal/output/json.go
package output

import (
	"io"

	"moop-core/blastxml"
	"moop/internal/jsonutil"
	"moop/pkg/api"
)

// ToAPIQuery converts a parsed query to the stable wire schema (v1).
func ToAPIQuery(q Query) api.QueryV1 {
	res := q.Result
	v := api.QueryV1{
		SourceFile:       q.SourceFile,
		Program:          programName(q),
		Database:         q.Report.Database,
		QueryName:        res.QueryName,
		QueryDescription: res.QueryDescription,
		QueryLength:      res.QueryLength,
		TotalHits:        res.TotalHits,
		Hits:             make([]api.HitV1, 0, len(res.Hits)),
	}
	for i, h := range res.Hits {
		v.Hits = append(v.Hits, toAPIHit(h, i))
	}
	return v
}

func programName(q Query) string {
	if q.Report.Program != "" {
		return q.Report.Program
	}
	return string(q.Program)
}

func toAPIHit(h blastxml.Hit, idx int) api.HitV1 {
	v := api.HitV1{
		Num:                              hitNum(h, idx),
		ID:                               h.ID,
		Accession:                        h.Accession,
		Subject:                          h.Subject,
		Length:                           h.Length,
		BestEvalue:                       h.BestEvalue,
		NumHSPs:                          h.NumHSPs,
		QueryCoveragePercent:             h.QueryCoveragePercent,
		SubjectCumulativeCoveragePercent: h.SubjectCumulativeCoveragePercent,
		HSPs:                             make([]api.HSPV1, 0, len(h.HSPs)),
	}
	for _, hsp := range h.HSPs {
		v.HSPs = append(v.HSPs, toAPIHSP(hsp))
	}
	return v
}

func toAPIHSP(h blastxml.HSP) api.HSPV1 {
	return api.HSPV1{
		Num:                    h.Num,
		Identities:             h.Identities,
		Positives:              h.Positives,
		AlignmentLength:        h.AlignmentLength,
		Evalue:                 h.Evalue,
		BitScore:               h.BitScore,
		Score:                  h.Score,
		PercentIdentity:        h.PercentIdentity,
		QueryFrom:              h.QueryFrom,
		QueryTo:                h.QueryTo,
		HitFrom:                h.HitFrom,
		HitTo:                  h.HitTo,
		QueryFrame:             h.QueryFrame,
		HitFrame:               h.HitFrame,
		QuerySeq:               h.QuerySeq,
		HitSeq:                 h.HitSeq,
		Midline:                h.Midline,
		Gaps:                   h.Gaps,
		GapLengths:             append([]int(nil), h.GapLengths...),
		TotalGapLength:         h.TotalGapLength,
		Similarities:           h.Similarities,
		SubjectCoveragePercent: h.SubjectCoveragePercent,
		QueryCoveragePercent:   h.QueryCoveragePercent,
		ScoreBand:              ScoreBand(h.BitScore).Name,
	}
}

func toAPIQueries(list []Query) []api.QueryV1 {
	out := make([]api.QueryV1, 0, len(list))
	for _, q := range list {
		out = append(out, ToAPIQuery(q))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 queries (pretty-indented).
func WriteJSON(w io.Writer, list []Query) error {
	return jsonutil.EncodePretty(w, toAPIQueries(list))
}
