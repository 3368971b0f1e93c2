// Package alignfmt renders one HSP as classic BLAST "Query / Sbjct" text.
package alignfmt

import (
	"strconv"
	"strings"
)

// LineWidth is the number of alignment columns per block.
const LineWidth = 60

// Strand is the subject strand of an untranslated alignment.
type Strand string

const (
	Plus  Strand = "Plus"
	Minus Strand = "Minus"
)

// Request carries one alignment and its coordinates. A frame of 0 means the
// side is not translated.
type Request struct {
	AlignmentLength int

	QuerySeq string
	Midline  string
	HitSeq   string

	QueryFrom, QueryTo int
	HitFrom, HitTo     int

	Strand     Strand
	QueryFrame int
	HitFrame   int
}

// cursor walks one side's coordinates block by block.
type cursor struct {
	pos  int
	dir  int // +1 forward, -1 backward
	step int // 3 on translated sides
}

func newCursor(from, to, frame int, reverse bool) cursor {
	c := cursor{dir: 1, step: 1}
	if frame != 0 {
		c.step = 3
		reverse = frame < 0
	}
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	if reverse {
		c.dir, c.pos = -1, hi
	} else {
		c.pos = lo
	}
	return c
}

// advance consumes residues and returns the first and last coordinate shown
// on the line. A line with no residues ends one before it starts.
func (c *cursor) advance(residues int) (start, end int) {
	start = c.pos
	end = start + c.dir*(c.step*residues) - c.dir
	c.pos = end + c.dir
	return start, end
}

// Format renders req in blocks of LineWidth columns. The result starts with a
// newline and is empty when AlignmentLength is not positive. Strings shorter
// than AlignmentLength are clipped rather than rejected.
func Format(req Request) string {
	if req.AlignmentLength <= 0 {
		return ""
	}
	width := labelWidth(req.QueryFrom, req.QueryTo, req.HitFrom, req.HitTo)
	blank := strings.Repeat(" ", width)

	// an untranslated query always reads forward
	q := newCursor(req.QueryFrom, req.QueryTo, req.QueryFrame, false)
	s := newCursor(req.HitFrom, req.HitTo, req.HitFrame, req.Strand == Minus)

	blocks := (req.AlignmentLength + LineWidth - 1) / LineWidth
	var b strings.Builder
	for i := 0; i < blocks; i++ {
		lo := i * LineWidth
		hi := lo + LineWidth

		qs := clip(req.QuerySeq, lo, hi)
		start, end := q.advance(residues(qs))
		b.WriteString("\nQuery  ")
		b.WriteString(pad(start, width))
		b.WriteString("  ")
		b.WriteString(qs)
		b.WriteString("  ")
		b.WriteString(strconv.Itoa(end))

		b.WriteString("\n       ")
		b.WriteString(blank)
		b.WriteString("  ")
		b.WriteString(clip(req.Midline, lo, hi))

		ss := clip(req.HitSeq, lo, hi)
		start, end = s.advance(residues(ss))
		b.WriteString("\nSbjct  ")
		b.WriteString(pad(start, width))
		b.WriteString("  ")
		b.WriteString(ss)
		b.WriteString("  ")
		b.WriteString(strconv.Itoa(end))
		b.WriteString("\n")
	}
	return b.String()
}

func labelWidth(coords ...int) int {
	m := coords[0]
	for _, c := range coords[1:] {
		if c > m {
			m = c
		}
	}
	return len(strconv.Itoa(m))
}

// pad left-aligns n in a field of width columns.
func pad(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func clip(s string, lo, hi int) string {
	if lo >= len(s) {
		return ""
	}
	if hi > len(s) {
		hi = len(s)
	}
	return s[lo:hi]
}

func residues(s string) int {
	return len(s) - strings.Count(s, "-")
}
