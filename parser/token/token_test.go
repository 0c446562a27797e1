package token

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	assert.Equal(t, "a.lisp:3:4", (&Location{File: "a.lisp", Pos: 10, Line: 3, Col: 4}).String())
	assert.Equal(t, "a.lisp:3", (&Location{File: "a.lisp", Pos: 10, Line: 3}).String())
	assert.Equal(t, "a.lisp[10]", (&Location{File: "a.lisp", Pos: 10}).String())
	assert.Equal(t, "<input>:1:1", (&Location{Line: 1, Col: 1}).String())
}

func TestType(t *testing.T) {
	assert.Equal(t, "(", LPAREN.String())
	assert.Equal(t, "number", NUMBER.String())
	assert.Equal(t, "invalid", Type(1000).String())
	assert.Equal(t, `symbol "abc"`, (&Token{Type: SYMBOL, Text: "abc"}).String())
	assert.Equal(t, "error: oops", (&Token{Type: ERROR, Text: "oops"}).String())
}

func TestScanner(t *testing.T) {
	s := NewScanner("test", strings.NewReader("ab\nλc"))
	c, ok := s.Peek()
	require.True(t, ok)
	assert.Equal(t, 'a', c)

	require.NoError(t, s.ScanRune())
	require.NoError(t, s.ScanRune())
	assert.Equal(t, 'b', s.Rune())
	tok := s.EmitToken(SYMBOL)
	assert.Equal(t, "ab", tok.Text)
	assert.Equal(t, "test:1:1", tok.Source.String())

	require.NoError(t, s.ScanRune())
	assert.Equal(t, '\n', s.Rune())
	s.Ignore()

	require.NoError(t, s.ScanRune())
	tok = s.EmitToken(SYMBOL)
	assert.Equal(t, "λ", tok.Text)
	assert.Equal(t, "test:2:1", tok.Source.String())
	assert.Equal(t, 3, tok.Source.Pos)

	require.NoError(t, s.ScanRune())
	assert.Equal(t, 'c', s.Rune())
	tok = s.EmitToken(SYMBOL)
	assert.Equal(t, "c", tok.Text)
	assert.Equal(t, "test:2:2", tok.Source.String())
	assert.Equal(t, 5, tok.Source.Pos)

	_, ok = s.Peek()
	assert.False(t, ok)
	assert.Equal(t, io.EOF, s.ScanRune())
}
