// Package climsg provides small stdout/stderr writer helpers for
// cmd/whisperctl. The library package never logs; only the CLI wrapper
// writes user-facing output, and it does so through explicit io.Writer
// plumbing rather than a logging framework.
package climsg

import (
	"fmt"
	"io"
)

// IO bundles a command's stdout and stderr streams.
type IO struct {
	out    io.Writer
	errOut io.Writer
}

// New returns an IO writing to out and errOut.
func New(out, errOut io.Writer) *IO {
	return &IO{out: out, errOut: errOut}
}

// Println writes to stdout.
func (o *IO) Println(a ...any) {
	_, _ = fmt.Fprintln(o.out, a...)
}

// Printf writes formatted output to stdout.
func (o *IO) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

// Errorln writes to stderr, prefixed with "error: ".
func (o *IO) Errorln(a ...any) {
	_, _ = fmt.Fprint(o.errOut, "error: ")
	_, _ = fmt.Fprintln(o.errOut, a...)
}

// Errorf writes formatted output to stderr, prefixed with "error: ".
func (o *IO) Errorf(format string, a ...any) {
	_, _ = fmt.Fprint(o.errOut, "error: ")
	_, _ = fmt.Fprintf(o.errOut, format+"\n", a...)
}
