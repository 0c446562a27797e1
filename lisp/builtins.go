package lisp

import (
	"fmt"
	"strings"
)

// LBuiltinDef is a built-in function
type LBuiltinDef interface {
	Name() string
	Formals() []string
	Eval(env *LEnv, args []*LVal) *LVal
}

type langBuiltin struct {
	name    string
	formals []string
	fun     BuiltinFunc
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Formals() []string {
	formals := make([]string, len(fun.formals))
	copy(formals, fun.formals)
	return formals
}

func (fun *langBuiltin) Eval(env *LEnv, args []*LVal) *LVal {
	lerr := fun.checkArity(CondArityMismatch, args)
	if lerr != nil {
		return lerr
	}
	return fun.fun(env, args)
}

// checkArity returns an error with the given condition if the number of args
// does not fit the function's formal argument list.
func (fun *langBuiltin) checkArity(condition string, args []*LVal) *LVal {
	lo, hi := formalsRange(fun.formals)
	switch {
	case hi < 0 && len(args) < lo:
		return berrf(condition, fun.name, "at least %d arguments expected (got %d)", lo, len(args))
	case hi < 0:
		return nil
	case lo == hi && len(args) != lo:
		return berrf(condition, fun.name, "%d arguments expected (got %d)", lo, len(args))
	case len(args) < lo || len(args) > hi:
		return berrf(condition, fun.name, "%d to %d arguments expected (got %d)", lo, hi, len(args))
	}
	return nil
}

// formalsRange returns the minimum and maximum number of arguments accepted
// by formals.  The maximum is -1 if the formals end with a variadic argument.
func formalsRange(formals []string) (lo, hi int) {
	optional := false
	for _, sym := range formals {
		switch sym {
		case VarArgSymbol:
			return lo, -1
		case OptArgSymbol:
			optional = true
		default:
			if !optional {
				lo++
			}
			hi++
		}
	}
	return lo, hi
}

// Formals returns a formal argument list for a builtin.
func Formals(argSymbols ...string) []string {
	return argSymbols
}

// berrf returns an error produced by the named builtin.
func berrf(condition string, bname string, format string, v ...interface{}) *LVal {
	return Errorf(condition, "%s: "+format, append([]interface{}{bname}, v...)...)
}

var langBuiltins = []*langBuiltin{
	{"+", Formals(VarArgSymbol, "x"), builtinAdd},
	{"-", Formals("x", VarArgSymbol, "rest"), builtinSub},
	{"*", Formals(VarArgSymbol, "x"), builtinMul},
	{"/", Formals("x", VarArgSymbol, "rest"), builtinDiv},
	{"car", Formals("lis"), builtinCAR},
	{"cdr", Formals("lis"), builtinCDR},
	{"cons", Formals("head", "tail"), builtinCons},
	{"list", Formals(VarArgSymbol, "args"), builtinList},
	{"=", Formals("a", "b"), builtinEq},
	{"<", Formals("a", "b"), builtinLT},
	{">", Formals("a", "b"), builtinGT},
	{"null?", Formals("x"), builtinNullP},
	{"number?", Formals("x"), builtinNumberP},
	{"string?", Formals("x"), builtinStringP},
	{"symbol?", Formals("x"), builtinSymbolP},
	{"cons?", Formals("x"), builtinConsP},
	{"debug-print", Formals(VarArgSymbol, "args"), builtinDebugPrint},
	{"debug-stack", Formals(), builtinDebugStack},
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	ops := make([]LBuiltinDef, len(langBuiltins))
	for i := range langBuiltins {
		ops[i] = langBuiltins[i]
	}
	return ops
}

// Bool returns the canonical true value, the symbol #t, or nil.
func Bool(b bool) *LVal {
	if b {
		return Symbol(TrueSymbol)
	}
	return Nil()
}

func numbers(name string, args []*LVal) ([]float64, *LVal) {
	nums := make([]float64, len(args))
	for i, v := range args {
		if v.typ != LNumber {
			return nil, berrf(CondTypeMismatch, name, "argument is not a number: %v", v.typ)
		}
		nums[i] = v.num
	}
	return nums, nil
}

func builtinAdd(env *LEnv, args []*LVal) *LVal {
	nums, lerr := numbers("+", args)
	if lerr != nil {
		return lerr
	}
	sum := 0.0
	for _, x := range nums {
		sum += x
	}
	return Number(sum)
}

func builtinMul(env *LEnv, args []*LVal) *LVal {
	nums, lerr := numbers("*", args)
	if lerr != nil {
		return lerr
	}
	prod := 1.0
	for _, x := range nums {
		prod *= x
	}
	return Number(prod)
}

func builtinSub(env *LEnv, args []*LVal) *LVal {
	nums, lerr := numbers("-", args)
	if lerr != nil {
		return lerr
	}
	if len(nums) == 1 {
		return Number(-nums[0])
	}
	diff := nums[0]
	for _, x := range nums[1:] {
		diff -= x
	}
	return Number(diff)
}

func builtinDiv(env *LEnv, args []*LVal) *LVal {
	nums, lerr := numbers("/", args)
	if lerr != nil {
		return lerr
	}
	if len(nums) == 1 {
		nums = []float64{1, nums[0]}
	}
	quo := nums[0]
	for _, x := range nums[1:] {
		if x == 0 {
			return berrf(CondDivisionByZero, "/", "division by zero")
		}
		quo /= x
	}
	return Number(quo)
}

func builtinCAR(env *LEnv, args []*LVal) *LVal {
	switch args[0].typ {
	case LNil:
		return Nil()
	case LCons:
		return args[0].cons.car
	default:
		return berrf(CondTypeMismatch, "car", "argument is not a list: %v", args[0].typ)
	}
}

func builtinCDR(env *LEnv, args []*LVal) *LVal {
	switch args[0].typ {
	case LNil:
		return Nil()
	case LCons:
		return args[0].cons.cdr
	default:
		return berrf(CondTypeMismatch, "cdr", "argument is not a list: %v", args[0].typ)
	}
}

func builtinCons(env *LEnv, args []*LVal) *LVal {
	return Cons(args[0], args[1])
}

func builtinList(env *LEnv, args []*LVal) *LVal {
	return List(args...)
}

// builtinEq compares atoms.  Cons cells and functions are never equal, not
// even to themselves.
func builtinEq(env *LEnv, args []*LVal) *LVal {
	a, b := args[0], args[1]
	if a.typ != b.typ {
		return Nil()
	}
	switch a.typ {
	case LNil:
		return Bool(true)
	case LNumber:
		return Bool(a.num == b.num)
	case LString, LSymbol:
		return Bool(a.str == b.str)
	default:
		return Nil()
	}
}

func builtinLT(env *LEnv, args []*LVal) *LVal {
	nums, lerr := numbers("<", args)
	if lerr != nil {
		return lerr
	}
	return Bool(nums[0] < nums[1])
}

func builtinGT(env *LEnv, args []*LVal) *LVal {
	nums, lerr := numbers(">", args)
	if lerr != nil {
		return lerr
	}
	return Bool(nums[0] > nums[1])
}

func builtinNullP(env *LEnv, args []*LVal) *LVal {
	return Bool(args[0].typ == LNil)
}

func builtinNumberP(env *LEnv, args []*LVal) *LVal {
	return Bool(args[0].typ == LNumber)
}

func builtinStringP(env *LEnv, args []*LVal) *LVal {
	return Bool(args[0].typ == LString)
}

func builtinSymbolP(env *LEnv, args []*LVal) *LVal {
	return Bool(args[0].typ == LSymbol)
}

func builtinConsP(env *LEnv, args []*LVal) *LVal {
	return Bool(args[0].typ == LCons)
}

func builtinDebugPrint(env *LEnv, args []*LVal) *LVal {
	strs := make([]string, len(args))
	for i := range args {
		strs[i] = args[i].String()
	}
	_, err := fmt.Fprintln(env.Runtime.Stderr, strings.Join(strs, " "))
	if err != nil {
		return env.Errorf(CondIO, "debug-print: %v", err)
	}
	return Nil()
}

func builtinDebugStack(env *LEnv, args []*LVal) *LVal {
	_, err := env.Runtime.Stack.DebugPrint(env.Runtime.Stderr)
	if err != nil {
		return env.Errorf(CondIO, "debug-stack: %v", err)
	}
	return Nil()
}
