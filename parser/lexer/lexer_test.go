package lexer

import (
	"strings"
	"testing"

	"github.com/ohodson/tiny-lisp/parser/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tok struct {
	typ  token.Type
	text string
}

func lexAll(source string) ([]tok, *Lexer) {
	lex := New(token.NewScanner("test", strings.NewReader(source)))
	var toks []tok
	for {
		t := lex.NextToken()
		toks = append(toks, tok{t.Type, t.Text})
		if t.Type == token.EOF || t.Type == token.ERROR {
			return toks, lex
		}
	}
}

func TestLexer(t *testing.T) {
	tests := []struct {
		source string
		toks   []tok
	}{
		{"", []tok{{token.EOF, ""}}},
		{"  \n\t ", []tok{{token.EOF, ""}}},
		{"()", []tok{
			{token.LPAREN, "("},
			{token.RPAREN, ")"},
			{token.EOF, ""},
		}},
		{"(+ 1 2.5)", []tok{
			{token.LPAREN, "("},
			{token.SYMBOL, "+"},
			{token.NUMBER, "1"},
			{token.NUMBER, "2.5"},
			{token.RPAREN, ")"},
			{token.EOF, ""},
		}},
		{"-1 +2 - -a +", []tok{
			{token.NUMBER, "-1"},
			{token.NUMBER, "+2"},
			{token.SYMBOL, "-"},
			{token.SYMBOL, "-a"},
			{token.SYMBOL, "+"},
			{token.EOF, ""},
		}},
		{"1.2.3 12abc .5", []tok{
			{token.NUMBER, "1.2.3"},
			{token.NUMBER, "12"},
			{token.SYMBOL, "abc"},
			{token.SYMBOL, ".5"},
			{token.EOF, ""},
		}},
		{"'a 'b'c '(x)", []tok{
			{token.QUOTE, "'"},
			{token.SYMBOL, "a"},
			{token.QUOTE, "'"},
			{token.SYMBOL, "b'c"},
			{token.QUOTE, "'"},
			{token.LPAREN, "("},
			{token.SYMBOL, "x"},
			{token.RPAREN, ")"},
			{token.EOF, ""},
		}},
		{"null? #t a;comment\nb", []tok{
			{token.SYMBOL, "null?"},
			{token.SYMBOL, "#t"},
			{token.SYMBOL, "a"},
			{token.SYMBOL, "b"},
			{token.EOF, ""},
		}},
		{"; only a comment", []tok{{token.EOF, ""}}},
		{`"a b" "" "x\"y" "\n\t\r\\" "\q"`, []tok{
			{token.STRING, "a b"},
			{token.STRING, ""},
			{token.STRING, `x"y`},
			{token.STRING, "\n\t\r\\"},
			{token.STRING, "q"},
			{token.EOF, ""},
		}},
		{`a"b"`, []tok{
			{token.SYMBOL, "a"},
			{token.STRING, "b"},
			{token.EOF, ""},
		}},
		{"a\u00a0b\v\fc\r\nd\u2003", []tok{
			{token.SYMBOL, "a\u00a0b"},
			{token.SYMBOL, "c"},
			{token.SYMBOL, "d\u2003"},
			{token.EOF, ""},
		}},
	}
	for _, test := range tests {
		toks, lex := lexAll(test.source)
		assert.Equal(t, test.toks, toks, "%q", test.source)
		assert.NoError(t, lex.Err())
	}
}

func TestIsSymbolRune(t *testing.T) {
	for _, c := range "az09+-*/?#'.\u00a0λ" {
		assert.True(t, IsSymbolRune(c), "%q", c)
	}
	for _, c := range " \t\n\v\f\r()\";" {
		assert.False(t, IsSymbolRune(c), "%q", c)
	}
}

func TestLexerErrors(t *testing.T) {
	for _, source := range []string{`"abc`, `(a "b\`} {
		toks, lex := lexAll(source)
		last := toks[len(toks)-1]
		assert.Equal(t, token.ERROR, last.typ, "%q", source)
		assert.True(t, IsUnexpectedEOF(lex.Err()), "%q", source)
		// errors are sticky
		assert.Equal(t, token.ERROR, lex.NextToken().Type)
	}

	toks, lex := lexAll("a \xff")
	require.Len(t, toks, 2)
	assert.Equal(t, token.ERROR, toks[1].typ)
	assert.Error(t, lex.Err())
	assert.False(t, IsUnexpectedEOF(lex.Err()))
}

func TestLexerLocation(t *testing.T) {
	lex := New(token.NewScanner("test", strings.NewReader("(a\n  \"b\"\n;c\n  'd)")))
	var locs []string
	for {
		tok := lex.NextToken()
		locs = append(locs, tok.Source.String())
		if tok.Type == token.EOF {
			break
		}
	}
	assert.Equal(t, []string{
		"test:1:1",
		"test:1:2",
		"test:2:3",
		"test:4:3",
		"test:4:4",
		"test:4:5",
		"test:4:6",
	}, locs)
	// EOF is sticky
	assert.Equal(t, token.EOF, lex.NextToken().Type)
}
