// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
)

// Common holds CLI fields shared by blastviz and blastviz-align.
type Common struct {
	Color    bool
	Quiet    bool
	Version  bool
	Examples bool
}

// Register wires the shared flags onto fs.
func Register(fs *flag.FlagSet, c *Common) {
	fs.BoolVar(&c.Color, "color", false, "colour scores and coverage with ANSI codes [false]")
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Examples, "examples", false, "print quickstart examples and exit [false]")
}

// ValidateExitCode checks a --no-match-exit-code value.
func ValidateExitCode(code int) error {
	if code < 0 || code > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
