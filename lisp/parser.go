package lisp

import "io"

// Reader converts source text into expressions.  The parser lives in its own
// package and is given to a Runtime with WithReader.
type Reader interface {
	// Read parses every top-level form in r.  Returned values carry source
	// locations whose file is name.  Failures are *ErrorVal errors with a
	// parse-error or unexpected-eof condition.
	Read(name string, r io.Reader) ([]*LVal, error)
}
