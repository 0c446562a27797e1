package lisp

import (
	"sort"

	"github.com/ohodson/tiny-lisp/parser/token"
)

// LEnv is a lisp environment frame.  Every frame belongs to a Runtime and all
// frames chained together by Parent share the same Runtime.
type LEnv struct {
	Parent  *LEnv
	Runtime *Runtime
	scope   map[string]*LVal
}

// NewEnv initializes and returns a new LEnv.  If parent is nil the returned
// environment is the root of a new Runtime with default configuration.
func NewEnv(parent *LEnv) *LEnv {
	env := &LEnv{
		Parent: parent,
		scope:  make(map[string]*LVal),
	}
	if parent != nil {
		env.Runtime = parent.Runtime
	} else {
		env.Runtime = newRuntime(env)
	}
	return env
}

// Define binds name to v in env.  Bindings in parent frames are never
// modified.
func (env *LEnv) Define(name string, v *LVal) {
	if v == nil {
		panic("nil value")
	}
	env.scope[name] = v
}

// Lookup returns the value bound to name in the nearest frame that binds it.
func (env *LEnv) Lookup(name string) (*LVal, bool) {
	for ; env != nil; env = env.Parent {
		v, ok := env.scope[name]
		if ok {
			return v, true
		}
	}
	return nil, false
}

// Extend returns a new empty frame whose parent is env.
func (env *LEnv) Extend() *LEnv {
	return NewEnv(env)
}

// Len returns the number of bindings in env, not counting its parents.
func (env *LEnv) Len() int {
	return len(env.scope)
}

// Symbols returns the sorted names of every binding visible from env.
func (env *LEnv) Symbols() []string {
	n := 0
	for e := env; e != nil; e = e.Parent {
		n += e.Len()
	}
	seen := make(map[string]bool, n)
	names := make([]string, 0, n)
	for e := env; e != nil; e = e.Parent {
		for name := range e.scope {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}

// AddBuiltins binds the given funs to their names in env.  When called with no
// arguments AddBuiltins adds the DefaultBuiltins to env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		if _, exists := env.scope[f.Name()]; exists {
			panic("symbol already defined: " + f.Name())
		}
		env.Define(f.Name(), Fun(f.Name(), f.Eval))
	}
}

// Errorf returns an error with the given condition that carries a snapshot of
// the runtime call stack.
func (env *LEnv) Errorf(condition string, format string, v ...interface{}) *LVal {
	lerr := Errorf(condition, format, v...)
	lerr.err.stack = env.Runtime.Stack.Copy()
	return lerr
}

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Failures are returned as LError values.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.typ {
	case LNil, LNumber, LString, LError:
		return v
	case LSymbol:
		val, ok := env.Lookup(v.str)
		if !ok {
			return located(v, env.Errorf(CondUnboundSymbol, "unbound symbol: %s", v.str))
		}
		return val
	case LCons:
		return env.evalCons(v)
	default:
		return env.Errorf(CondTypeMismatch, "%v value used as an expression", v.typ)
	}
}

func (env *LEnv) evalCons(expr *LVal) *LVal {
	head := expr.cons.car
	if head.typ == LSymbol {
		op := lookupSpecialOp(head.str)
		if op != nil {
			args, ok := SliceList(expr.cons.cdr)
			if !ok {
				return located(expr, env.Errorf(CondSpecialForm, "%s: improper argument list", head.str))
			}
			return located(expr, op.Eval(env, args))
		}
	}

	fun := env.Eval(head)
	if fun.typ == LError {
		return fun
	}
	cells, ok := SliceList(expr.cons.cdr)
	if !ok {
		return located(expr, env.Errorf(CondTypeMismatch, "improper argument list"))
	}
	args := make([]*LVal, len(cells))
	for i := range cells {
		args[i] = env.Eval(cells[i])
		if args[i].typ == LError {
			return args[i]
		}
	}

	name := "#<lambda>"
	if head.typ == LSymbol {
		name = head.str
	}
	return located(expr, env.call(name, expr.source, fun, args))
}

// Call invokes fun with already evaluated args.  Call is used by Go code to
// call lisp functions.
func (env *LEnv) Call(fun *LVal, args ...*LVal) *LVal {
	name := "#<lambda>"
	if fun.typ == LBuiltin {
		name = fun.fn.name
	}
	return env.call(name, nil, fun, args)
}

func (env *LEnv) call(name string, source *token.Location, fun *LVal, args []*LVal) *LVal {
	switch fun.typ {
	case LBuiltin, LClosure:
	default:
		return env.Errorf(CondNotCallable, "value is not callable: %v", fun)
	}

	stack := env.Runtime.Stack
	if fun.typ == LBuiltin {
		name = fun.fn.name
	}
	if !stack.Push(name, source) {
		return env.Errorf(CondStackOverflow, "maximum stack height exceeded: %d", stack.MaxHeight)
	}
	r := env.apply(fun, args)
	if r.typ == LError && r.err.stack == nil {
		r.err.stack = stack.Copy()
	}
	stack.Pop()
	return r
}

func (env *LEnv) apply(fun *LVal, args []*LVal) *LVal {
	if fun.typ == LBuiltin {
		return fun.fn.builtin(env, args)
	}
	params := fun.fn.params
	if len(args) != len(params) {
		return Errorf(CondArityMismatch, "function expects %d arguments (got %d)", len(params), len(args))
	}
	frame := fun.fn.env.Extend()
	for i := range params {
		frame.Define(params[i], args[i])
	}
	return frame.Eval(fun.fn.body)
}

// located attaches the source location of expr to result if result is an
// error which does not already know where it happened.
func located(expr *LVal, result *LVal) *LVal {
	if result.typ == LError && result.source == nil && expr.source != nil {
		result.source = expr.source
	}
	return result
}
