package lisp

import (
	"fmt"
	"io"
)

// Config is a function that configures a Runtime.
type Config func(rt *Runtime) error

// WithMaximumStackHeight returns a Config that will prevent a runtime from
// allowing the call stack height to exceed n.  A value of zero removes the
// limit, leaving runaway recursion to exhaust the goroutine stack.
func WithMaximumStackHeight(n int) Config {
	return func(rt *Runtime) error {
		if n < 0 {
			return fmt.Errorf("invalid maximum stack height: %d", n)
		}
		rt.Stack.MaxHeight = n
		return nil
	}
}

// WithReader returns a Config that makes a runtime use r to parse source
// streams.  There is no default Reader for a runtime.
func WithReader(r Reader) Config {
	return func(rt *Runtime) error {
		rt.Reader = r
		return nil
	}
}

// WithStderr returns a Config that makes a runtime write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(rt *Runtime) error {
		if w == nil {
			return fmt.Errorf("nil stderr writer")
		}
		rt.Stderr = w
		return nil
	}
}
