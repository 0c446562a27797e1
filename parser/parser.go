/*
Package parser provides a lisp parser.

	expr   := '(' <expr>* ')' | '\'' <expr> | <number> | <string> | <symbol>
	number := [+-]?[0-9][0-9.]*
	string := '"' <strcontent>* '"'
	strcontent := [^"\\] | '\' <any>
	symbol := [^[:space:]()";]+

Comments begin with ';' and continue to the end of the line.  The symbol nil
is read as the empty list.
*/
package parser

import (
	"bytes"

	"github.com/ohodson/tiny-lisp/lisp"
	"github.com/ohodson/tiny-lisp/parser/rdparser"
)

// NewReader returns a new lisp.Reader.
func NewReader() lisp.Reader {
	return rdparser.NewReader()
}

// ParseLVal parses LVal values from text and returns them.
func ParseLVal(text []byte) ([]*lisp.LVal, error) {
	return NewReader().Read("", bytes.NewReader(text))
}

// Parse parses a single expression from text.  An error is returned if text
// does not contain exactly one expression.
func Parse(text string) (*lisp.LVal, error) {
	exprs, err := ParseLVal([]byte(text))
	if err != nil {
		return nil, err
	}
	if len(exprs) != 1 {
		return nil, lisp.GoError(lisp.Errorf(lisp.CondParse, "expected one expression (got %d)", len(exprs)))
	}
	return exprs[0], nil
}

// IsIncomplete returns true if err indicates that the parsed text ended in
// the middle of an expression.
func IsIncomplete(err error) bool {
	return rdparser.IsIncomplete(err)
}
