// internal/clibase/usage.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"moop/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints the tool-specific sections; def looks up a flag's default.
func UsageCommon(fs *flag.FlagSet, name, tagline string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s: %s\n\n", name, tagline)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --color                 Colour scores and coverage with ANSI codes [%s]\n", def("color"))
		fmt.Fprintf(out, "  -q, --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Print quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}

// ErrPrintedAndExitOK is returned by ParseArgs when the caller asked for
// --examples. Apps print the examples and exit 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a quickstart title, the tool's body and a help tip.
func PrintExamples(out io.Writer, name string, body func(io.Writer)) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s quickstart\n\n", name)
	if body != nil {
		body(out)
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
