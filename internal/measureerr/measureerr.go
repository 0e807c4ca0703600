// Package measureerr defines the error kinds from spec §7 (usage, parse,
// structure, external, io) as a single typed error so callers — chiefly
// the CLI — can tell "print usage and exit" apart from "fatal, print
// diagnostic and exit" without string-matching messages.
package measureerr

import "fmt"

// Kind classifies an error per spec §7.
type Kind int

const (
	// Usage indicates a malformed CLI invocation.
	Usage Kind = iota
	// Parse indicates a surface LTL parse failure.
	Parse
	// Structure indicates an unsupported AST node was reached in
	// simplify/analyze/unroll/measure — always a bug in this program,
	// never user error.
	Structure
	// External indicates the #SAT counter was missing, exited nonzero,
	// or produced unparseable output.
	External
	// IO indicates the DIMACS scratch file could not be written or read.
	IO
)

func (k Kind) String() string {
	switch k {
	case Usage:
		return "usage"
	case Parse:
		return "parse"
	case Structure:
		return "structure"
	case External:
		return "external"
	case IO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is the concrete error type carried through this program. Usage
// and Parse errors are expected to surface as a usage message (spec §7);
// Structure, External, and IO errors are always fatal.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Fatal reports whether an error of this kind is always a bug (Structure)
// or an environment failure (External, IO) rather than user error.
func (k Kind) Fatal() bool {
	return k == Structure || k == External || k == IO
}

// New builds a measureerr.Error with a formatted message.
func New(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a measureerr.Error that wraps an underlying error.
func Wrap(kind Kind, err error, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// As extracts a *Error from err, mirroring errors.As for the common case
// of a single level of wrapping used throughout this program.
func As(err error) (*Error, bool) {
	me, ok := err.(*Error)
	return me, ok
}
