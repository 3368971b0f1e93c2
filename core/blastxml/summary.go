package blastxml

// Summary is the at-a-glance statistics card shown above a query's hits.
type Summary struct {
	Hits        int
	HSPs        int
	BestEvalue  float64 // top hit's best e-value; 0 when there are no hits
	TopIdentity float64 // first HSP of the top hit
	QueryLength int
	HasTopHit   bool
}

// Summarize builds the card for q. "Top" means first in report order.
func Summarize(q QueryResult) Summary {
	s := Summary{Hits: len(q.Hits), QueryLength: q.QueryLength}
	for _, h := range q.Hits {
		s.HSPs += len(h.HSPs)
	}
	if len(q.Hits) > 0 && len(q.Hits[0].HSPs) > 0 {
		top := q.Hits[0]
		s.HasTopHit = true
		s.BestEvalue = top.BestEvalue
		s.TopIdentity = top.HSPs[0].PercentIdentity
	}
	return s
}

// WithQueryLength returns a copy of q measured against a query of length n.
// Query-side coverage is recomputed; subject-side statistics are untouched.
func WithQueryLength(q QueryResult, n int) QueryResult {
	out := q
	out.QueryLength = n
	out.Hits = make([]Hit, len(q.Hits))
	for i, h := range q.Hits {
		h.HSPs = append([]HSP(nil), h.HSPs...)
		out.Hits[i] = h
	}
	return finishQuery(out)
}

// Truncate keeps at most maxHits hits and maxHSPs HSPs per hit, in report
// order. Zero means no limit. Per-hit aggregates are recomputed for the
// retained HSPs.
func Truncate(q QueryResult, maxHits, maxHSPs int) QueryResult {
	out := q
	hits := q.Hits
	if maxHits > 0 && len(hits) > maxHits {
		hits = hits[:maxHits]
	}
	out.Hits = make([]Hit, len(hits))
	for i, h := range hits {
		h.HSPs = append([]HSP(nil), h.HSPs...)
		if maxHSPs > 0 && len(h.HSPs) > maxHSPs {
			h.HSPs = h.HSPs[:maxHSPs]
			h.BestEvalue = h.HSPs[0].Evalue
			for _, hsp := range h.HSPs[1:] {
				if hsp.Evalue < h.BestEvalue {
					h.BestEvalue = hsp.Evalue
				}
			}
			h = finishHit(h)
		}
		out.Hits[i] = h
	}
	return finishQuery(out)
}
