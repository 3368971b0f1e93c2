package output

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
)

// Band is a colour class for a bit score or a coverage value.
type Band struct {
	Name string
	Hex  string
	Attr color.Attribute
}

var (
	BandBlack  = Band{"black", "#000000", color.Reset}
	BandBlue   = Band{"blue", "#0047c8", color.FgBlue}
	BandGreen  = Band{"green", "#77de75", color.FgGreen}
	BandPurple = Band{"purple", "#e967f5", color.FgMagenta}
	BandRed    = Band{"red", "#e83a2d", color.FgRed}
)

// ScoreBand buckets an HSP bit score the way the graphical overview does.
func ScoreBand(bits float64) Band {
	switch {
	case bits <= 40:
		return BandBlack
	case bits <= 50:
		return BandBlue
	case bits <= 80:
		return BandGreen
	case bits <= 200:
		return BandPurple
	}
	return BandRed
}

// Coverage bands for the hit summary table.
var (
	CoverageExcellent = Band{"excellent", "#28a745", color.FgGreen}
	CoverageGood      = Band{"good", "#ffc107", color.FgYellow}
	CoverageModerate  = Band{"moderate", "#fd7e14", color.FgHiYellow}
	CoverageLow       = Band{"low", "#dc3545", color.FgRed}
)

// CoverageBand buckets a query coverage percentage.
func CoverageBand(pct float64) Band {
	switch {
	case pct >= 80:
		return CoverageExcellent
	case pct >= 50:
		return CoverageGood
	case pct >= 30:
		return CoverageModerate
	}
	return CoverageLow
}

// FormatEvalue renders e-values below 1e-100 as "0" and everything else in
// two-digit scientific notation.
func FormatEvalue(e float64) string {
	if e < 1e-100 {
		return "0"
	}
	return fmt.Sprintf("%.2e", e)
}

// FormatPercent prints v with the shortest exact decimal form ("84", "90.91").
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
