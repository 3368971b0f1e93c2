// internal/alignapp/app.go
package alignapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"moop-core/alignfmt"
	"moop/internal/aligncli"
	"moop/internal/appcore"
	"moop/internal/clibase"
	"moop/internal/version"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext prints one formatted alignment. The context is accepted for
// symmetry with the other tools; formatting never blocks.
func RunContext(_ context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := aligncli.NewFlagSet("blastviz-align")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := aligncli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return appcore.Flush(outw, stderr, 0)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			aligncli.PrintExamples(outw)
			return appcore.Flush(outw, stderr, 0)
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		fmt.Fprintf(outw, "blastviz-align version %s\n", version.Version)
		return appcore.Flush(outw, stderr, 0)
	}

	// Format leads with a newline that separates it from report text
	block := strings.TrimPrefix(alignfmt.Format(opts.Request()), "\n")
	_, _ = io.WriteString(outw, block)
	return appcore.Flush(outw, stderr, 0)
}
