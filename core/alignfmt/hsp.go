package alignfmt

import (
	"moop-core/blastxml"
	"moop-core/program"
)

// FromHSP builds a Request for h, keeping only the frames that mean
// translation for p. BLAST reports frames of ±1 on blastn HSPs; those encode
// strand, not translation, and become Strand instead.
func FromHSP(p program.Program, h blastxml.HSP) Request {
	req := Request{
		AlignmentLength: h.AlignmentLength,
		QuerySeq:        h.QuerySeq,
		Midline:         h.Midline,
		HitSeq:          h.HitSeq,
		QueryFrom:       h.QueryFrom,
		QueryTo:         h.QueryTo,
		HitFrom:         h.HitFrom,
		HitTo:           h.HitTo,
		Strand:          Plus,
	}
	if req.AlignmentLength <= 0 {
		req.AlignmentLength = len(h.QuerySeq)
	}

	if p.QueryTranslated() {
		req.QueryFrame = frameOrForward(h.QueryFrame)
	}
	if p.SubjectTranslated() {
		req.HitFrame = frameOrForward(h.HitFrame)
	}
	if req.HitFrame == 0 && (h.HitFrame < 0 || h.SubjectReversed()) && p.SubjectMolecule() == program.Nucleotide {
		req.Strand = Minus
	}
	return req
}

func frameOrForward(f int) int {
	if f == 0 {
		return 1
	}
	return f
}
