package rdparser

import (
	"github.com/ohodson/tiny-lisp/parser/lexer"
	"github.com/ohodson/tiny-lisp/parser/token"
)

// TokenSource is a stream of tokens with one token of lookahead.
type TokenSource struct {
	lex   *lexer.Lexer
	Token *token.Token
	Peek  *token.Token
}

// NewTokenSource initializes and returns a new TokenSource that scans tokens
// from scanner.
func NewTokenSource(scanner *token.Scanner) *TokenSource {
	lex := lexer.New(scanner)
	s := &TokenSource{
		lex: lex,
	}
	s.scan()
	return s
}

// AcceptType advances the stream and returns true if the next token has one
// of the given types.
func (s *TokenSource) AcceptType(typ ...token.Type) bool {
	for _, typ := range typ {
		if s.Peek.Type == typ {
			s.scan()
			return true
		}
	}
	return false
}

// Scan advances the stream by one token.  Scan returns false at the end of
// the stream.
func (s *TokenSource) Scan() bool {
	if s.IsEOF() {
		s.Token = s.Peek
		return false
	}
	s.scan()
	return true
}

// IsEOF returns true if the stream has no more tokens.
func (s *TokenSource) IsEOF() bool {
	return s.Peek.Type == token.EOF
}

// Err returns the lexical error that produced an ERROR token, if any.
func (s *TokenSource) Err() error {
	return s.lex.Err()
}

func (s *TokenSource) scan() {
	s.Token = s.Peek
	s.Peek = s.lex.NextToken()
}
