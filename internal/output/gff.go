package output

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"

	"moop-core/alignfmt"
	"moop-core/blastxml"
)

// gffFeature describes one HSP on its subject sequence. Coordinates follow
// biogo: FeatStart is 0-based, FeatEnd is exclusive.
func gffFeature(q Query, h blastxml.Hit, hsp blastxml.HSP) *gff.Feature {
	name := h.Accession
	if name == "" {
		name = h.ID
	}
	r := hsp.HitRange()
	strand := seq.Plus
	req := alignfmt.FromHSP(q.Program, hsp)
	if req.Strand == alignfmt.Minus || req.HitFrame < 0 {
		strand = seq.Minus
	}
	score := hsp.BitScore
	source := programName(q)
	if source == "" {
		source = "blast"
	}
	return &gff.Feature{
		SeqName:    name,
		Source:     source,
		Feature:    "match_part",
		FeatStart:  r.From - 1,
		FeatEnd:    r.To,
		FeatScore:  &score,
		FeatStrand: strand,
		FeatFrame:  gff.NoFrame,
		FeatAttributes: gff.Attributes{
			{Tag: "Query", Value: `"` + q.Result.QueryName + `"`},
			{Tag: "QueryRange", Value: fmt.Sprintf("%d %d", hsp.QueryFrom, hsp.QueryTo)},
			{Tag: "Evalue", Value: FormatEvalue(hsp.Evalue)},
			{Tag: "Identity", Value: FormatPercent(hsp.PercentIdentity)},
			{Tag: "color", Value: ScoreBand(hsp.BitScore).Hex},
		},
	}
}

func writeGFFQuery(enc *gff.Writer, q Query) error {
	for _, h := range q.Result.Hits {
		for _, hsp := range h.HSPs {
			if _, err := enc.Write(gffFeature(q, h, hsp)); err != nil {
				return err
			}
		}
	}
	return nil
}

// StreamGFF writes one match_part feature per HSP, on subject coordinates.
func StreamGFF(w io.Writer, in <-chan Query, header bool) error {
	enc := gff.NewWriter(w, 60, header)
	for q := range in {
		if err := writeGFFQuery(enc, q); err != nil {
			return err
		}
	}
	return nil
}

// WriteGFF is StreamGFF over a slice.
func WriteGFF(w io.Writer, list []Query, header bool) error {
	enc := gff.NewWriter(w, 60, header)
	for _, q := range list {
		if err := writeGFFQuery(enc, q); err != nil {
			return err
		}
	}
	return nil
}
