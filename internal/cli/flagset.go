package cli

import (
	"flag"
	"io"
)

// NewFlagSet returns a silent ContinueOnError FlagSet carrying the blastviz
// help text. Callers point its output somewhere before calling Usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	Usage(fs)
	return fs
}
