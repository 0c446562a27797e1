package lisp

import (
	"errors"
	"io"
	"os"
	"strings"
)

// ErrNoReader is returned when source text is given to a Runtime that was not
// configured with a Reader.
var ErrNoReader = errors.New("no reader configured")

// Runtime is an interpreter instance.  It owns the global environment and
// the call stack shared by every environment frame derived from it.  A
// Runtime must not be used by more than one goroutine at a time.
type Runtime struct {
	Root   *LEnv
	Stack  *CallStack
	Reader Reader
	Stderr io.Writer
}

func newRuntime(root *LEnv) *Runtime {
	return &Runtime{
		Root:   root,
		Stack:  &CallStack{MaxHeight: DefaultMaxHeight},
		Stderr: os.Stderr,
	}
}

// NewRuntime returns a Runtime whose global environment holds the default
// builtins and the constants #t and #f.
func NewRuntime(config ...Config) (*Runtime, error) {
	env := NewEnv(nil)
	env.Define(TrueSymbol, Symbol(TrueSymbol))
	env.Define(FalseSymbol, Symbol(FalseSymbol))
	env.AddBuiltins()
	rt := env.Runtime
	for _, fn := range config {
		err := fn(rt)
		if err != nil {
			return nil, err
		}
	}
	return rt, nil
}

// Eval evaluates expr in the global environment.  Evaluation failures are
// returned as LError values.
func (rt *Runtime) Eval(expr *LVal) *LVal {
	return rt.Root.Eval(expr)
}

// Read parses the contents of r with the runtime's Reader.
func (rt *Runtime) Read(name string, r io.Reader) ([]*LVal, error) {
	if rt.Reader == nil {
		return nil, ErrNoReader
	}
	return rt.Reader.Read(name, r)
}

// Load reads every expression from r and evaluates them in order, returning
// the value of the last one.  Nil is returned if r contains no expressions.
// Evaluation stops at the first error.  Definitions made before the error
// remain bound.
func (rt *Runtime) Load(name string, r io.Reader) (*LVal, error) {
	exprs, err := rt.Read(name, r)
	if err != nil {
		return nil, err
	}
	ret := Nil()
	for _, expr := range exprs {
		ret = rt.Eval(expr)
		if ret.typ == LError {
			return nil, GoError(ret)
		}
	}
	return ret, nil
}

// LoadString is like Load but reads source from a string.
func (rt *Runtime) LoadString(name, source string) (*LVal, error) {
	return rt.Load(name, strings.NewReader(source))
}

// EvalString evaluates every expression in source and returns the value of
// the last one.
func (rt *Runtime) EvalString(source string) (*LVal, error) {
	return rt.LoadString("", source)
}
