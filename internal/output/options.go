package output

// Options control the text report.
type Options struct {
	// Render the Query/Sbjct blocks under each HSP.
	Alignments bool

	// Colour score and coverage bands with ANSI escapes.
	Color bool

	// Subject descriptions in the hit table are cut to this many bytes.
	SubjectWidth int
}

// DefaultOptions matches the portal's result page.
var DefaultOptions = Options{
	Alignments:   true,
	Color:        false,
	SubjectWidth: 60,
}
