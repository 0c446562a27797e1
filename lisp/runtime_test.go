package lisp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ohodson/tiny-lisp/lisp"
	"github.com/ohodson/tiny-lisp/lisp/lisptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuntimeLoad(t *testing.T) {
	var stderr bytes.Buffer
	rt := lisptest.NewRuntime(t, &stderr)

	v, err := rt.LoadString("test", `
; square a number
(define sq (lambda (x) (* x x)))
(sq 5)
`)
	require.NoError(t, err)
	assert.Equal(t, "25", v.String())

	v, err = rt.LoadString("empty", "  ; nothing here\n")
	require.NoError(t, err)
	assert.True(t, v.IsNil())

	v, err = rt.Load("reader", strings.NewReader("(define y 2) (car 1) (define z 3)"))
	assert.Nil(t, v)
	require.Error(t, err)
	assert.True(t, lisp.IsEvalError(err))
	assert.Equal(t, lisp.CondTypeMismatch, lisp.ErrorCondition(err))
	assert.Equal(t, "reader:1:14: type-error: car: argument is not a list: number", err.Error())

	v, err = rt.EvalString("y")
	require.NoError(t, err)
	assert.Equal(t, "2", v.String())
	_, err = rt.EvalString("z")
	assert.Equal(t, lisp.CondUnboundSymbol, lisp.ErrorCondition(err))

	_, err = rt.LoadString("bad", "(sq 2")
	require.Error(t, err)
	assert.True(t, lisp.IsParseError(err))
	assert.Equal(t, lisp.CondUnexpectedEOF, lisp.ErrorCondition(err))
	assert.Equal(t, "bad:1:1: unexpected-eof: unmatched (", err.Error())

	exprs, err := rt.Read("two", strings.NewReader("1 'x"))
	require.NoError(t, err)
	if assert.Len(t, exprs, 2) {
		assert.Equal(t, "(quote x)", exprs[1].String())
	}
}

func TestErrorLocation(t *testing.T) {
	var stderr bytes.Buffer
	rt := lisptest.NewRuntime(t, &stderr)
	_, err := rt.LoadString("test", "(define f (lambda (x)\n  (+ x undefined)))\n(f 1)")
	require.Error(t, err)
	assert.Equal(t, "test:2:8: unbound-symbol: unbound symbol: undefined", err.Error())

	var lerr *lisp.ErrorVal
	require.ErrorAs(t, err, &lerr)
	stack := lerr.Stack()
	require.NotNil(t, stack)
	if assert.Len(t, stack.Frames, 1) {
		assert.Equal(t, "f", stack.Frames[0].Name)
		assert.Equal(t, "test:3:1", stack.Frames[0].Source.String())
	}
}

func TestDebugStack(t *testing.T) {
	const debugstack = `Stack Trace [4 frames -- entrypoint last]:
  height 3: test:2:22: debug-stack
  height 2: test:3:23: g
  height 1: test:4:13: h
  height 0: test:4:1: #<lambda>
`
	var stderr bytes.Buffer
	rt := lisptest.NewRuntime(t, &stderr)
	v, err := rt.LoadString("test", `
(define g (lambda () (debug-stack)))
(define h (lambda (x) (g)))
((lambda () (h 1)))`)
	require.NoError(t, err)
	assert.True(t, v.IsNil())
	assert.Equal(t, debugstack, stderr.String())
	assert.Equal(t, 0, rt.Stack.Height())
}
