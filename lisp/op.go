package lisp

// langSpecialOp is a builtin whose arguments are passed to it unevaluated.
// Special operators are recognized by the name at the head of an expression
// and cannot be shadowed by bindings.
type langSpecialOp struct {
	langBuiltin
}

func (op *langSpecialOp) Eval(env *LEnv, args []*LVal) *LVal {
	lerr := op.checkArity(CondSpecialForm, args)
	if lerr != nil {
		return lerr
	}
	return op.fun(env, args)
}

// langSpecialOps are listed in the order they are matched.  The table is
// filled by init because the operators evaluate expressions, which consults
// the table.
var langSpecialOps []*langSpecialOp

func init() {
	langSpecialOps = []*langSpecialOp{
		{langBuiltin{QuoteSymbol, Formals("expr"), opQuote}},
		{langBuiltin{"if", Formals("condition", "then", OptArgSymbol, "else"), opIf}},
		{langBuiltin{"define", Formals("symbol", "expr"), opDefine}},
		{langBuiltin{"lambda", Formals("formals", "expr"), opLambda}},
	}
}

// DefaultSpecialOps returns the special operators understood by the
// evaluator.
func DefaultSpecialOps() []LBuiltinDef {
	ops := make([]LBuiltinDef, len(langSpecialOps))
	for i := range langSpecialOps {
		ops[i] = langSpecialOps[i]
	}
	return ops
}

func lookupSpecialOp(name string) *langSpecialOp {
	for _, op := range langSpecialOps {
		if op.name == name {
			return op
		}
	}
	return nil
}

func opQuote(env *LEnv, args []*LVal) *LVal {
	return args[0]
}

func opIf(env *LEnv, args []*LVal) *LVal {
	cond := env.Eval(args[0])
	if cond.typ == LError {
		return cond
	}
	if cond.IsTrue() {
		return env.Eval(args[1])
	}
	if len(args) > 2 {
		return env.Eval(args[2])
	}
	return Nil()
}

func opDefine(env *LEnv, args []*LVal) *LVal {
	if args[0].typ != LSymbol {
		return berrf(CondSpecialForm, "define", "first argument is not a symbol: %v", args[0].typ)
	}
	v := env.Eval(args[1])
	if v.typ == LError {
		return v
	}
	env.Define(args[0].str, v)
	return v
}

func opLambda(env *LEnv, args []*LVal) *LVal {
	formals, ok := SliceList(args[0])
	if !ok {
		return berrf(CondSpecialForm, "lambda", "first argument is not a list: %v", args[0].typ)
	}
	params := make([]string, len(formals))
	for i, sym := range formals {
		if sym.typ != LSymbol {
			return berrf(CondSpecialForm, "lambda", "first argument contains a non-symbol: %v", sym.typ)
		}
		params[i] = sym.str
	}
	return Lambda(params, args[1], env)
}
