package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"

	"moop-core/blastxml"
	"moop-core/program"
)

// subjectSeq returns the aligned subject segment of hsp with gaps removed.
func subjectSeq(q Query, h blastxml.Hit, hsp blastxml.HSP) *linear.Seq {
	r := hsp.HitRange()
	id := h.Accession
	if id == "" {
		id = h.ID
	}
	alpha := alphabet.Alphabet(alphabet.DNAredundant)
	if q.Program.SubjectMolecule() == program.Protein {
		alpha = alphabet.Protein
	}
	residues := strings.ReplaceAll(hsp.HitSeq, "-", "")
	s := linear.NewSeq(fmt.Sprintf("%s_%d_%d", id, r.From, r.To), alphabet.BytesToLetters([]byte(residues)), alpha)
	s.Desc = fmt.Sprintf("query=%s hsp=%d evalue=%s pident=%s", q.Result.QueryName, hsp.Num, FormatEvalue(hsp.Evalue), FormatPercent(hsp.PercentIdentity))
	if hsp.SubjectReversed() {
		s.Desc += " strand=-"
	}
	return s
}

func writeFASTAQuery(w io.Writer, q Query) error {
	for _, h := range q.Result.Hits {
		for _, hsp := range h.HSPs {
			if _, err := fmt.Fprintf(w, "%60a\n", subjectSeq(q, h, hsp)); err != nil {
				return err
			}
		}
	}
	return nil
}

// StreamFASTA writes the aligned subject segment of every HSP.
func StreamFASTA(w io.Writer, in <-chan Query) error {
	for q := range in {
		if err := writeFASTAQuery(w, q); err != nil {
			return err
		}
	}
	return nil
}

// WriteFASTA is StreamFASTA over a slice.
func WriteFASTA(w io.Writer, list []Query) error {
	for _, q := range list {
		if err := writeFASTAQuery(w, q); err != nil {
			return err
		}
	}
	return nil
}
