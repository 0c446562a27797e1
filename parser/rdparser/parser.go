package rdparser

import (
	"errors"
	"io"
	"strconv"

	"github.com/ohodson/tiny-lisp/lisp"
	"github.com/ohodson/tiny-lisp/parser/lexer"
	"github.com/ohodson/tiny-lisp/parser/token"
)

type reader struct {
}

// NewReader returns a lisp.Reader to use in a lisp.Runtime.
func NewReader() lisp.Reader {
	return &reader{}
}

// Read implements lisp.Reader.
func (*reader) Read(name string, r io.Reader) ([]*lisp.LVal, error) {
	s := token.NewScanner(name, r)
	p := New(s)
	return p.ParseProgram()
}

// IsIncomplete returns true if err was returned because the input ended
// before an expression was complete.  Appending more text to the input may
// allow it to be parsed.
func IsIncomplete(err error) bool {
	return lisp.ErrorCondition(err) == lisp.CondUnexpectedEOF
}

// Parser is a lisp parser.
type Parser struct {
	src *TokenSource
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	return &Parser{
		src: NewTokenSource(scanner),
	}
}

// ParseProgram parses every expression remaining in the input.
func (p *Parser) ParseProgram() ([]*lisp.LVal, error) {
	var exprs []*lisp.LVal
	for !p.src.IsEOF() {
		expr := p.ParseExpression()
		if expr.IsError() {
			return nil, lisp.GoError(expr)
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseExpression parses a single expression.  Errors are returned as
// lisp.LError values.
func (p *Parser) ParseExpression() *lisp.LVal {
	switch p.src.Peek.Type {
	case token.NUMBER:
		return p.ParseNumber()
	case token.STRING:
		return p.ParseString()
	case token.SYMBOL:
		return p.ParseSymbol()
	case token.QUOTE:
		return p.ParseQuote()
	case token.LPAREN:
		return p.ParseConsExpression()
	case token.EOF:
		p.src.Scan()
		return p.errorf(lisp.CondUnexpectedEOF, "unexpected end of input")
	case token.ERROR:
		p.src.Scan()
		if lexer.IsUnexpectedEOF(p.src.Err()) {
			return p.errorf(lisp.CondUnexpectedEOF, "%s", p.src.Token.Text)
		}
		return p.errorf(lisp.CondParse, "%s", p.src.Token.Text)
	default:
		p.src.Scan()
		return p.errorf(lisp.CondParse, "unexpected %s", p.src.Token.Type)
	}
}

func (p *Parser) ParseNumber() *lisp.LVal {
	if !p.src.AcceptType(token.NUMBER) {
		return p.errorf(lisp.CondParse, "invalid number: %v", p.src.Peek.Type)
	}
	text := p.src.Token.Text
	// Out of range literals read as the nearest float64 (possibly infinite).
	x, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return p.errorf(lisp.CondParse, "invalid number: %s", text)
	}
	return p.tokenLVal(lisp.Number(x))
}

func (p *Parser) ParseString() *lisp.LVal {
	if !p.src.AcceptType(token.STRING) {
		return p.errorf(lisp.CondParse, "invalid string literal: %v", p.src.Peek.Type)
	}
	return p.tokenLVal(lisp.String(p.src.Token.Text))
}

// ParseSymbol parses a symbol.  The symbol nil is read as the empty list.
func (p *Parser) ParseSymbol() *lisp.LVal {
	if !p.src.AcceptType(token.SYMBOL) {
		return p.errorf(lisp.CondParse, "invalid symbol: %v", p.src.Peek.Type)
	}
	text := p.src.Token.Text
	if text == lisp.NilSymbol {
		return p.tokenLVal(lisp.Nil())
	}
	return p.tokenLVal(lisp.Symbol(text))
}

// ParseQuote parses 'expr as (quote expr).
func (p *Parser) ParseQuote() *lisp.LVal {
	if !p.src.AcceptType(token.QUOTE) {
		return p.errorf(lisp.CondParse, "invalid quote: %v", p.src.Peek.Type)
	}
	loc := p.src.Token.Source
	if p.src.IsEOF() {
		p.src.Scan()
		return lisp.Errorf(lisp.CondUnexpectedEOF, "quote at end of input").WithSource(loc)
	}
	expr := p.ParseExpression()
	if expr.IsError() {
		return expr
	}
	quote := lisp.Symbol(lisp.QuoteSymbol).WithSource(loc)
	return lisp.List(quote, expr).WithSource(loc)
}

func (p *Parser) ParseConsExpression() *lisp.LVal {
	if !p.src.AcceptType(token.LPAREN) {
		return p.errorf(lisp.CondParse, "invalid list: %v", p.src.Peek.Type)
	}
	open := p.src.Token
	b := lisp.NewListBuilder()
	for {
		if p.src.IsEOF() {
			p.src.Scan()
			return lisp.Errorf(lisp.CondUnexpectedEOF, "unmatched %s", open.Text).WithSource(open.Source)
		}
		if p.src.AcceptType(token.RPAREN) {
			break
		}
		x := p.ParseExpression()
		if x.IsError() {
			return x
		}
		b.Append(x)
	}
	return b.List().WithSource(open.Source)
}

func (p *Parser) tokenLVal(v *lisp.LVal) *lisp.LVal {
	return v.WithSource(p.src.Token.Source)
}

func (p *Parser) errorf(condition string, format string, v ...interface{}) *lisp.LVal {
	return lisp.Errorf(condition, format, v...).WithSource(p.src.Token.Source)
}
