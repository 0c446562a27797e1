// Package lisptest runs table driven tests of lisp source code.
package lisptest

import (
	"bytes"
	"testing"

	"github.com/ohodson/tiny-lisp/lisp"
	"github.com/ohodson/tiny-lisp/parser"
)

// TestSequence is a sequence of lisp expressions which are evaluated
// sequentially by a lisp.Runtime.
type TestSequence []struct {
	Expr   string // a lisp expression
	Result string // the evaluated result
	Stderr string // output written to the runtime's stderr, if any
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// NewRuntime returns a runtime that reads source with the default parser and
// writes debugging output to stderr.
func NewRuntime(t testing.TB, stderr *bytes.Buffer, config ...lisp.Config) *lisp.Runtime {
	config = append([]lisp.Config{
		lisp.WithReader(parser.NewReader()),
		lisp.WithStderr(stderr),
	}, config...)
	rt, err := lisp.NewRuntime(config...)
	if err != nil {
		t.Fatalf("Failed to initialize lisp runtime: %v", err)
	}
	return rt
}

// Render returns the string used to compare v with an expected result.
// Errors render as "#<error condition>" so that tests don't depend on error
// messages.
func Render(v *lisp.LVal) string {
	if v.IsError() {
		return "#<error " + lisp.ErrorCondition(lisp.GoError(v)) + ">"
	}
	return v.String()
}

// RunTestSuite runs each TestSequence in tests on isolated lisp.Runtimes.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		var stderr bytes.Buffer
		rt := NewRuntime(t, &stderr)
		for j, expr := range test.TestSequence {
			stderr.Reset()
			v, err := parser.ParseLVal([]byte(expr.Expr))
			if err != nil {
				result := "#<error " + lisp.ErrorCondition(err) + ">"
				if result != expr.Result {
					t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				}
				continue
			}
			if len(v) == 0 {
				t.Errorf("test %d %q: expr %d: no expression parsed", i, test.Name, j)
				continue
			}
			var ret *lisp.LVal
			for _, x := range v {
				ret = rt.Eval(x)
				if ret.IsError() {
					break
				}
			}
			result := Render(ret)
			if result != expr.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, expr.Result, result)
			}
			if stderr.String() != expr.Stderr {
				t.Errorf("test %d %q: expr %d: expected stderr %q (got %q)", i, test.Name, j, expr.Stderr, stderr.String())
			}
			if rt.Stack.Height() != 0 {
				t.Errorf("test %d %q: expr %d: call stack not empty after evaluation (height %d)", i, test.Name, j, rt.Stack.Height())
			}
		}
	}
}
