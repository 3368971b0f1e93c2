// core/blastxml/stats.go
package blastxml

import (
	"math"
	"sort"
	"strings"
)

const gapChar = '-'

// Range is a closed 1-based interval with From <= To.
type Range struct {
	From int
	To   int
}

// NewRange orders a and b so minus-strand endpoints normalize.
func NewRange(a, b int) Range {
	if a > b {
		a, b = b, a
	}
	return Range{From: a, To: b}
}

// Len is the number of positions in r.
func (r Range) Len() int { return r.To - r.From + 1 }

// MergeRanges returns the union of rs as ascending, non-overlapping ranges.
// A range merges into its predecessor when it starts at or before the
// predecessor's end.
func MergeRanges(rs []Range) []Range {
	if len(rs) == 0 {
		return nil
	}
	sorted := make([]Range, len(rs))
	for i, r := range rs {
		sorted[i] = NewRange(r.From, r.To)
	}
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].From < sorted[j].From })

	merged := []Range{sorted[0]}
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.From <= last.To {
			if r.To > last.To {
				last.To = r.To
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// CoveredPositions counts the positions covered by the union of rs.
func CoveredPositions(rs []Range) int {
	n := 0
	for _, r := range MergeRanges(rs) {
		n += r.Len()
	}
	return n
}

// MergedCoverage is the percentage of span covered by the union of rs,
// rounded to two decimals and kept within [0, 100]. A non-positive span
// yields 0.
func MergedCoverage(rs []Range, span int) float64 {
	if span <= 0 {
		return 0
	}
	return clampPercent(Round2(float64(CoveredPositions(rs)) / float64(span) * 100))
}

// GapRuns returns the length of every contiguous run of '-' in each of seqs,
// scanning each sequence left to right in argument order.
func GapRuns(seqs ...string) []int {
	var runs []int
	for _, s := range seqs {
		run := 0
		for i := 0; i < len(s); i++ {
			if s[i] == gapChar {
				run++
				continue
			}
			if run > 0 {
				runs = append(runs, run)
				run = 0
			}
		}
		if run > 0 {
			runs = append(runs, run)
		}
	}
	return runs
}

// PercentIdentity is identities/alignLen*100 rounded to two decimals, or 0
// for an empty alignment.
func PercentIdentity(identities, alignLen int) float64 {
	if alignLen <= 0 {
		return 0
	}
	return Round2(float64(identities) / float64(alignLen) * 100)
}

// Similarities counts midline columns that are neither identities nor blank.
func Similarities(midline string, identities int) int {
	return len(midline) - identities - strings.Count(midline, " ")
}

// SpanPercent is (|to-from|+1)/length*100 rounded to two decimals, or 0 when
// length is not positive.
func SpanPercent(from, to, length int) float64 {
	if length <= 0 {
		return 0
	}
	return Round2(float64(NewRange(from, to).Len()) / float64(length) * 100)
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 { return math.Round(v*100) / 100 }

func clampPercent(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

func sum(xs []int) int {
	t := 0
	for _, x := range xs {
		t += x
	}
	return t
}
