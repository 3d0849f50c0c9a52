package main

import (
	"errors"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/calvinalkan/whisper/internal/climsg"
)

// Command defines one whisperctl subcommand with unified help generation.
type Command struct {
	// Name is the subcommand's first word, e.g. "create".
	Name string

	// Usage is the freeform usage string shown after "whisperctl".
	Usage string

	// Short is a one-line description shown in the top-level help listing.
	Short string

	// Flags defines the command's own flags. May be nil for commands that
	// take only positional arguments.
	Flags *flag.FlagSet

	// Exec runs the command after flags are parsed.
	Exec func(o *climsg.IO, cfg Config, args []string) error
}

// HelpLine returns the one-line summary shown in the top-level listing.
func (c *Command) HelpLine() string {
	return "  " + padRight(c.Usage, 28) + c.Short
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}

	return s + strings.Repeat(" ", n-len(s))
}

// Run parses args against the command's flags and executes it, printing
// errors through o. Returns the process exit code.
func (c *Command) Run(o *climsg.IO, cfg Config, args []string) int {
	if c.Flags != nil {
		c.Flags.SetOutput(&strings.Builder{}) // discard pflag's own usage text.

		if err := c.Flags.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return 0
			}

			o.Errorln(err)

			return 2
		}

		args = c.Flags.Args()
	}

	if err := c.Exec(o, cfg, args); err != nil {
		o.Errorln(err)

		return 1
	}

	return 0
}
