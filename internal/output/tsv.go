package output

import (
	"fmt"
	"io"
	"strconv"

	"moop-core/blastxml"
)

// FormatRowTSV returns one HSP row matching TSVHeader (no trailing newline).
func FormatRowTSV(q Query, hitIdx int, h blastxml.Hit, hsp blastxml.HSP) string {
	return fmt.Sprintf("%s\t%s\t%d\t%s\t%s\t%d\t%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t%s\t%d\t%s\t%s\t%s\t%s",
		q.SourceFile, q.Result.QueryName,
		hitNum(h, hitIdx), h.ID, h.Subject, h.Length,
		hsp.Num, FormatPercent(hsp.PercentIdentity), hsp.AlignmentLength, hsp.Identities, hsp.Gaps,
		hsp.QueryFrom, hsp.QueryTo, hsp.HitFrom, hsp.HitTo, hsp.QueryFrame, hsp.HitFrame,
		FormatEvalue(hsp.Evalue), strconv.FormatFloat(hsp.BitScore, 'f', -1, 64), hsp.Score,
		FormatPercent(hsp.QueryCoveragePercent), FormatPercent(hsp.SubjectCoveragePercent),
		FormatPercent(h.QueryCoveragePercent), ScoreBand(hsp.BitScore).Name,
	)
}

func writeRowsTSV(w io.Writer, q Query) error {
	for i, h := range q.Result.Hits {
		for _, hsp := range h.HSPs {
			if _, err := fmt.Fprintln(w, FormatRowTSV(q, i, h, hsp)); err != nil {
				return err
			}
		}
	}
	return nil
}

// StreamTSV writes one row per HSP as queries arrive.
func StreamTSV(w io.Writer, in <-chan Query, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for q := range in {
		if err := writeRowsTSV(w, q); err != nil {
			return err
		}
	}
	return nil
}

// WriteTSV writes queries as a tab-delimited table.
func WriteTSV(w io.Writer, list []Query, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, q := range list {
		if err := writeRowsTSV(w, q); err != nil {
			return err
		}
	}
	return nil
}
