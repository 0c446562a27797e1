package lisp

import (
	"errors"
	"fmt"

	"github.com/ohodson/tiny-lisp/parser/token"
)

// Error conditions.  Parse errors use CondParse or CondUnexpectedEOF.  Every
// other condition is an evaluation error.
const (
	CondParse          = "parse-error"
	CondUnexpectedEOF  = "unexpected-eof"
	CondUnboundSymbol  = "unbound-symbol"
	CondTypeMismatch   = "type-error"
	CondArityMismatch  = "arity-error"
	CondDivisionByZero = "division-by-zero"
	CondNotCallable    = "not-callable"
	CondSpecialForm    = "invalid-special-form"
	CondStackOverflow  = "stack-overflow"
	CondIO             = "io-error"
)

type errData struct {
	msg   string
	stack *CallStack
}

// Errorf returns an LVal representing an error with the given condition and
// a formatted message.
func Errorf(condition string, format string, v ...interface{}) *LVal {
	return &LVal{
		typ: LError,
		str: condition,
		err: &errData{msg: fmt.Sprintf(format, v...)},
	}
}

// ErrorVal implements the error interface so that errors can be first class
// lisp objects.  The condition is stored in the Str field and contextual
// information (call stack, source location) alongside it.
type ErrorVal LVal

// GoError returns v as an error if v is LError.  GoError returns nil
// otherwise.
func GoError(v *LVal) error {
	if v == nil || v.typ != LError {
		return nil
	}
	return (*ErrorVal)(v)
}

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	msg := e.str + ": " + e.err.msg
	if e.source != nil {
		return e.source.String() + ": " + msg
	}
	return msg
}

// Condition returns the error condition, e.g. CondUnboundSymbol.
func (e *ErrorVal) Condition() string {
	return e.str
}

// Message returns the error message without condition or location.
func (e *ErrorVal) Message() string {
	return e.err.msg
}

// Stack returns a copy of the call stack at the time the error was created,
// or nil if the error was not created during evaluation.
func (e *ErrorVal) Stack() *CallStack {
	return e.err.stack
}

// Source returns the location of the expression that failed, if known.
func (e *ErrorVal) Source() *token.Location {
	return e.source
}

// LVal returns e as a lisp value.
func (e *ErrorVal) LVal() *LVal {
	return (*LVal)(e)
}

// ErrorCondition returns the condition of err if it is (or wraps) an
// *ErrorVal.  ErrorCondition returns an empty string otherwise.
func ErrorCondition(err error) string {
	var lerr *ErrorVal
	if errors.As(err, &lerr) {
		return lerr.Condition()
	}
	return ""
}

// IsParseError returns true if err was produced while reading source text.
func IsParseError(err error) bool {
	switch ErrorCondition(err) {
	case CondParse, CondUnexpectedEOF:
		return true
	}
	return false
}

// IsEvalError returns true if err was produced while evaluating an
// expression.
func IsEvalError(err error) bool {
	cond := ErrorCondition(err)
	return cond != "" && !IsParseError(err)
}
