package lexer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ohodson/tiny-lisp/parser/token"
)

// Lexer converts source text into a stream of tokens.  Once the lexer has
// returned an EOF or ERROR token every later call to NextToken returns a
// token of the same type.
type Lexer struct {
	scanner *token.Scanner
	ch      rune // current unicode rune

	// readErr is an error from the scanner.
	readErr error
	// err is the cause of the last ERROR token
	err  error
	done *token.Token
}

func New(s *token.Scanner) *Lexer {
	lex := &Lexer{
		scanner: s,
	}
	return lex
}

// Err returns the error that caused the lexer to emit an ERROR token, or nil.
// A string that is still open at the end of input produces an error that
// wraps io.ErrUnexpectedEOF.
func (lex *Lexer) Err() error {
	return lex.err
}

func (lex *Lexer) NextToken() *token.Token {
	if lex.done != nil {
		tok := *lex.done
		return &tok
	}
	tok := lex.nextToken()
	if tok.Type == token.EOF || tok.Type == token.ERROR {
		lex.done = tok
	}
	return tok
}

func (lex *Lexer) nextToken() *token.Token {
	for {
		lex.readErr = lex.skipWhitespace()
		if lex.readErr != nil {
			return lex.emitError(lex.readErr, true)
		}
		lex.readChar()
		if lex.readErr != nil {
			return lex.emitError(lex.readErr, true)
		}
		if lex.ch != ';' {
			break
		}
		err := lex.skipComment()
		if err != nil {
			return lex.emitError(err, true)
		}
	}
	switch lex.ch {
	case '(':
		return lex.scanner.EmitToken(token.LPAREN)
	case ')':
		return lex.scanner.EmitToken(token.RPAREN)
	case '\'':
		return lex.scanner.EmitToken(token.QUOTE)
	case '"':
		return lex.readString()
	case '+', '-':
		if isDigit(lex.peekRune()) {
			return lex.readNumber()
		}
		return lex.readSymbol()
	default:
		if isDigit(lex.ch) {
			return lex.readNumber()
		}
		return lex.readSymbol()
	}
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	tok := &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.scanner.LocStart(),
	}
	lex.scanner.Ignore()
	return tok
}

func (lex *Lexer) emitError(err error, expectEOF bool) *token.Token {
	if err == io.EOF {
		if expectEOF {
			return lex.emit(token.EOF, "")
		}
		err = io.ErrUnexpectedEOF
	}
	lex.err = err
	return lex.emit(token.ERROR, err.Error())
}

// skipComment consumes the rest of the current line.
func (lex *Lexer) skipComment() error {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || c == '\n' {
			break
		}
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	lex.scanner.Ignore()
	return nil
}

func (lex *Lexer) readString() *token.Token {
	var buf strings.Builder
	for {
		err := lex.readChar()
		if err == io.EOF {
			return lex.emitError(fmt.Errorf("unterminated string literal: %w", io.ErrUnexpectedEOF), false)
		}
		if err != nil {
			return lex.emitError(err, false)
		}
		switch lex.ch {
		case '"':
			return lex.emit(token.STRING, buf.String())
		case '\\':
			err := lex.readChar()
			if err == io.EOF {
				return lex.emitError(fmt.Errorf("unterminated string literal: %w", io.ErrUnexpectedEOF), false)
			}
			if err != nil {
				return lex.emitError(err, false)
			}
			buf.WriteRune(unescape(lex.ch))
		default:
			buf.WriteRune(lex.ch)
		}
	}
}

// unescape returns the character denoted by a backslash followed by c.
// Unrecognized escapes denote c itself.
func unescape(c rune) rune {
	switch c {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	default:
		return c
	}
}

// readNumber reads an optional sign followed by digits and decimal points.
// The text may not actually be a usable number (e.g. "1.2.3"), but we can
// find that out at parse time -- not scan time.
func (lex *Lexer) readNumber() *token.Token {
	for {
		c := lex.peekRune()
		if !isDigit(c) && c != '.' {
			break
		}
		err := lex.readChar()
		if err != nil {
			return lex.emitError(err, false)
		}
	}
	return lex.scanner.EmitToken(token.NUMBER)
}

func (lex *Lexer) readSymbol() *token.Token {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !IsSymbolRune(c) {
			break
		}
		err := lex.readChar()
		if err != nil {
			return lex.emitError(err, false)
		}
	}
	return lex.scanner.EmitToken(token.SYMBOL)
}

func (lex *Lexer) skipWhitespace() error {
	for {
		c, ok := lex.scanner.Peek()
		if !ok || !isSpace(c) {
			break
		}
		err := lex.readChar()
		if err != nil {
			return err
		}
	}
	lex.scanner.Ignore()
	return nil
}

func (lex *Lexer) peekRune() rune {
	r, _ := lex.scanner.Peek()
	return r
}

func (lex *Lexer) readChar() error {
	lex.readErr = lex.scanner.ScanRune()
	if lex.readErr != nil {
		return lex.readErr
	}
	lex.ch = lex.scanner.Rune()
	return nil
}

// IsUnexpectedEOF returns true if err indicates input ended in the middle of
// a token.
func IsUnexpectedEOF(err error) bool {
	return errors.Is(err, io.ErrUnexpectedEOF)
}

// IsSymbolRune returns true if c may appear in a symbol.  Symbols are
// delimited by ASCII whitespace, parentheses, double quotes and comments.
func IsSymbolRune(c rune) bool {
	if isSpace(c) {
		return false
	}
	switch c {
	case '(', ')', '"', ';':
		return false
	}
	return true
}

// isSpace matches the ASCII whitespace characters.  Other unicode spaces are
// symbol characters.
func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
