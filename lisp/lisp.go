package lisp

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ohodson/tiny-lisp/internal/lfmt"
	"github.com/ohodson/tiny-lisp/parser/token"
)

// LValType is the type of an LVal
type LValType uint

// Possible LValType values.  The zero LValType is LNil so the zero LVal is a
// valid nil value.
const (
	LNil LValType = iota
	LNumber
	LString
	LSymbol
	LCons
	LBuiltin
	LClosure
	// LError is an evaluation or parse failure.  Error values are never bound
	// to symbols or passed to functions -- evaluation stops as soon as one is
	// produced.
	LError
	numLValTypes
)

var lvalTypeStrings = [numLValTypes]string{
	LNil:     "nil",
	LNumber:  "number",
	LString:  "string",
	LSymbol:  "symbol",
	LCons:    "cons",
	LBuiltin: "builtin",
	LClosure: "lambda",
	LError:   "error",
}

func (t LValType) String() string {
	if t >= numLValTypes {
		return "INVALID"
	}
	return lvalTypeStrings[t]
}

// BuiltinFunc is a function implemented in Go.  Arguments have already been
// evaluated when the function is invoked.  The env is the environment of the
// calling expression.
type BuiltinFunc func(env *LEnv, args []*LVal) *LVal

// LVal is a lisp value.  LVal values are immutable once constructed; the
// parser's ListBuilder is the only code that links cons cells after
// allocation, and it does so before the list is visible to anything else.
type LVal struct {
	typ    LValType
	num    float64
	str    string // LString/LSymbol text, LError condition
	cons   *consData
	fn     *funData
	err    *errData
	source *token.Location
}

type consData struct {
	car *LVal
	cdr *LVal
}

type funData struct {
	// builtin functions
	name    string
	builtin BuiltinFunc

	// closures
	params []string
	body   *LVal
	env    *LEnv
}

// Nil returns an LVal representing nil, the empty list.
func Nil() *LVal {
	return &LVal{typ: LNil}
}

// Number returns an LVal representing the number x.
func Number(x float64) *LVal {
	return &LVal{typ: LNumber, num: x}
}

// String returns an LVal representing the string s.
func String(s string) *LVal {
	return &LVal{typ: LString, str: s}
}

// Symbol returns an LVal representing the symbol s.
func Symbol(s string) *LVal {
	return &LVal{typ: LSymbol, str: s}
}

// Cons returns a new cons cell with the given head and tail.  If tail is a
// proper list then so is the result.
func Cons(car, cdr *LVal) *LVal {
	return &LVal{
		typ:  LCons,
		cons: &consData{car: car, cdr: cdr},
	}
}

// List returns a proper list containing the elements of v in order.
func List(v ...*LVal) *LVal {
	lis := Nil()
	for i := len(v) - 1; i >= 0; i-- {
		lis = Cons(v[i], lis)
	}
	return lis
}

// Fun returns a builtin function value.  The name is used in stack traces.
func Fun(name string, fn BuiltinFunc) *LVal {
	return &LVal{
		typ: LBuiltin,
		fn:  &funData{name: name, builtin: fn},
	}
}

// Lambda returns a closure with the given parameters and body which captures
// env by reference.
func Lambda(params []string, body *LVal, env *LEnv) *LVal {
	cp := make([]string, len(params))
	copy(cp, params)
	return &LVal{
		typ: LClosure,
		fn:  &funData{params: cp, body: body, env: env},
	}
}

// Type returns the variant of v.
func (v *LVal) Type() LValType {
	return v.typ
}

// Source returns the location v was parsed from, if known.
func (v *LVal) Source() *token.Location {
	return v.source
}

// WithSource records loc as the location v was parsed from and returns v.
// Source locations are metadata and do not affect equality.
func (v *LVal) WithSource(loc *token.Location) *LVal {
	v.source = loc
	return v
}

// IsNil returns true if v is nil.
func (v *LVal) IsNil() bool { return v.typ == LNil }

// IsNumber returns true if v is a number.
func (v *LVal) IsNumber() bool { return v.typ == LNumber }

// IsString returns true if v is a string.
func (v *LVal) IsString() bool { return v.typ == LString }

// IsSymbol returns true if v is a symbol.
func (v *LVal) IsSymbol() bool { return v.typ == LSymbol }

// IsCons returns true if v is a cons cell.
func (v *LVal) IsCons() bool { return v.typ == LCons }

// IsBuiltin returns true if v is a builtin function.
func (v *LVal) IsBuiltin() bool { return v.typ == LBuiltin }

// IsClosure returns true if v is a user defined function.
func (v *LVal) IsClosure() bool { return v.typ == LClosure }

// IsError returns true if v is an error.
func (v *LVal) IsError() bool { return v.typ == LError }

// IsTrue returns true if v counts as true in a conditional.  Only nil is
// false.
func (v *LVal) IsTrue() bool { return v.typ != LNil }

func (v *LVal) mismatch(want LValType) error {
	return GoError(Errorf(CondTypeMismatch, "value is not a %v: %v", want, v.typ))
}

// AsNumber returns the value of a number.
func (v *LVal) AsNumber() (float64, error) {
	if v.typ != LNumber {
		return 0, v.mismatch(LNumber)
	}
	return v.num, nil
}

// AsString returns the text of a string.
func (v *LVal) AsString() (string, error) {
	if v.typ != LString {
		return "", v.mismatch(LString)
	}
	return v.str, nil
}

// AsSymbol returns the name of a symbol.
func (v *LVal) AsSymbol() (string, error) {
	if v.typ != LSymbol {
		return "", v.mismatch(LSymbol)
	}
	return v.str, nil
}

// CAR returns the head of a cons cell.
func (v *LVal) CAR() (*LVal, error) {
	if v.typ != LCons {
		return nil, v.mismatch(LCons)
	}
	return v.cons.car, nil
}

// CDR returns the tail of a cons cell.
func (v *LVal) CDR() (*LVal, error) {
	if v.typ != LCons {
		return nil, v.mismatch(LCons)
	}
	return v.cons.cdr, nil
}

// AsBuiltin returns the name and Go function of a builtin.
func (v *LVal) AsBuiltin() (string, BuiltinFunc, error) {
	if v.typ != LBuiltin {
		return "", nil, v.mismatch(LBuiltin)
	}
	return v.fn.name, v.fn.builtin, nil
}

// Params returns a copy of a closure's parameter names.
func (v *LVal) Params() ([]string, error) {
	if v.typ != LClosure {
		return nil, v.mismatch(LClosure)
	}
	params := make([]string, len(v.fn.params))
	copy(params, v.fn.params)
	return params, nil
}

// Body returns the body expression of a closure.
func (v *LVal) Body() (*LVal, error) {
	if v.typ != LClosure {
		return nil, v.mismatch(LClosure)
	}
	return v.fn.body, nil
}

// Env returns the environment captured by a closure.
func (v *LVal) Env() (*LEnv, error) {
	if v.typ != LClosure {
		return nil, v.mismatch(LClosure)
	}
	return v.fn.env, nil
}

// Equal returns true if a and b are structurally identical.  Cons cells are
// compared element by element.  Functions are only equal to themselves.
// Equal is stricter than the lisp ``='' builtin, which never considers cons
// cells equal.
func Equal(a, b *LVal) bool {
	for {
		if a.typ != b.typ {
			return false
		}
		switch a.typ {
		case LNil:
			return true
		case LNumber:
			return a.num == b.num
		case LString, LSymbol:
			return a.str == b.str
		case LBuiltin, LClosure:
			return a.fn == b.fn
		case LCons:
			if a.cons == b.cons {
				return true
			}
			if !Equal(a.cons.car, b.cons.car) {
				return false
			}
			a, b = a.cons.cdr, b.cons.cdr
		default:
			return false
		}
	}
}

func (v *LVal) String() string {
	var buf strings.Builder
	Format(&buf, v)
	return buf.String()
}

// Format writes the canonical text representation of v to w.
func Format(w io.Writer, v *LVal) (int, error) {
	lw := lfmt.NewWriter(w)
	format(lw, v)
	return lw.Result()
}

func format(w *lfmt.Writer, v *LVal) {
	switch v.typ {
	case LNil:
		w.WriteString("nil")
	case LNumber:
		w.WriteString(formatNumber(v.num))
	case LString:
		w.WriteString(`"`)
		w.WriteString(v.str)
		w.WriteString(`"`)
	case LSymbol:
		w.WriteString(v.str)
	case LCons:
		formatCons(w, v)
	case LBuiltin:
		w.WriteString("#<builtin>")
	case LClosure:
		w.WriteString("#<lambda>")
	case LError:
		w.WriteString("#<error ")
		w.WriteString((*ErrorVal)(v).Error())
		w.WriteString(">")
	default:
		w.WriteString("#<unknown>")
	}
}

func formatCons(w *lfmt.Writer, v *LVal) {
	w.WriteString("(")
	for {
		format(w, v.cons.car)
		tail := v.cons.cdr
		if tail.typ == LNil {
			break
		}
		if tail.typ != LCons {
			w.WriteString(" . ")
			format(w, tail)
			break
		}
		w.WriteString(" ")
		v = tail
	}
	w.WriteString(")")
}

// formatNumber never uses exponent notation so that the lexer can read the
// result back.  Infinities and NaN have no literal syntax and are written as
// inf, -inf and nan.
func formatNumber(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case math.IsNaN(x):
		return "nan"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
