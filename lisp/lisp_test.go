package lisp

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	env := NewEnv(nil)
	tests := []struct {
		v    *LVal
		text string
	}{
		{Nil(), "nil"},
		{Number(3), "3"},
		{Number(-3), "-3"},
		{Number(2.5), "2.5"},
		{Number(0.1), "0.1"},
		{Number(1e21), "1000000000000000000000"},
		{Number(math.Inf(1)), "inf"},
		{Number(math.Inf(-1)), "-inf"},
		{Number(math.NaN()), "nan"},
		{String("a b"), `"a b"`},
		{String(`say "hi"`), `"say "hi""`},
		{Symbol("foo"), "foo"},
		{List(), "nil"},
		{List(Number(1), Symbol("b"), String("c")), `(1 b "c")`},
		{List(List(Number(1)), Nil()), "((1) nil)"},
		{Cons(Number(1), Number(2)), "(1 . 2)"},
		{Cons(Number(1), Cons(Number(2), Symbol("c"))), "(1 2 . c)"},
		{Fun("car", nil), "#<builtin>"},
		{Lambda(nil, Nil(), env), "#<lambda>"},
		{Errorf(CondArityMismatch, "bad"), "#<error arity-error: bad>"},
	}
	for _, test := range tests {
		assert.Equal(t, test.text, test.v.String())
	}

	var buf bytes.Buffer
	n, err := Format(&buf, List(Number(1), Number(2)))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "(1 2)", buf.String())
}

func TestAccessors(t *testing.T) {
	x, err := Number(1.5).AsNumber()
	assert.NoError(t, err)
	assert.Equal(t, 1.5, x)
	_, err = String("1.5").AsNumber()
	assert.Equal(t, CondTypeMismatch, ErrorCondition(err))

	s, err := String("abc").AsString()
	assert.NoError(t, err)
	assert.Equal(t, "abc", s)
	_, err = Symbol("abc").AsString()
	assert.Error(t, err)

	s, err = Symbol("abc").AsSymbol()
	assert.NoError(t, err)
	assert.Equal(t, "abc", s)
	_, err = String("abc").AsSymbol()
	assert.Error(t, err)

	c := Cons(Number(1), Number(2))
	car, err := c.CAR()
	assert.NoError(t, err)
	assert.True(t, Equal(Number(1), car))
	cdr, err := c.CDR()
	assert.NoError(t, err)
	assert.True(t, Equal(Number(2), cdr))
	_, err = Nil().CAR()
	assert.Equal(t, CondTypeMismatch, ErrorCondition(err))
	_, err = Nil().CDR()
	assert.Error(t, err)

	name, fn, err := Fun("f", builtinList).AsBuiltin()
	assert.NoError(t, err)
	assert.Equal(t, "f", name)
	assert.NotNil(t, fn)
	_, _, err = Number(1).AsBuiltin()
	assert.Error(t, err)

	env := NewEnv(nil)
	params := []string{"x", "y"}
	f := Lambda(params, Symbol("x"), env)
	params[0] = "z"
	ps, err := f.Params()
	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, ps)
	ps[1] = "z"
	ps, _ = f.Params()
	assert.Equal(t, []string{"x", "y"}, ps)
	body, err := f.Body()
	assert.NoError(t, err)
	assert.True(t, Equal(Symbol("x"), body))
	fenv, err := f.Env()
	assert.NoError(t, err)
	assert.Same(t, env, fenv)
	_, err = Nil().Params()
	assert.Error(t, err)
	_, err = Nil().Body()
	assert.Error(t, err)
	_, err = Nil().Env()
	assert.Error(t, err)
}

func TestPredicates(t *testing.T) {
	env := NewEnv(nil)
	vals := []*LVal{
		Nil(),
		Number(0),
		String(""),
		Symbol("a"),
		Cons(Nil(), Nil()),
		Fun("f", builtinList),
		Lambda(nil, Nil(), env),
		Errorf(CondParse, "x"),
	}
	for i, v := range vals {
		assert.Equal(t, LValType(i), v.Type())
		assert.Equal(t, i == 0, v.IsNil())
		assert.Equal(t, i == 1, v.IsNumber())
		assert.Equal(t, i == 2, v.IsString())
		assert.Equal(t, i == 3, v.IsSymbol())
		assert.Equal(t, i == 4, v.IsCons())
		assert.Equal(t, i == 5, v.IsBuiltin())
		assert.Equal(t, i == 6, v.IsClosure())
		assert.Equal(t, i == 7, v.IsError())
		assert.Equal(t, i != 0, v.IsTrue())
	}
	assert.Equal(t, "cons", LCons.String())
	assert.Equal(t, "INVALID", LValType(100).String())
}

func TestEqual(t *testing.T) {
	env := NewEnv(nil)
	f := Fun("f", builtinList)
	g := Lambda(nil, Nil(), env)
	assert.True(t, Equal(Nil(), Nil()))
	assert.True(t, Equal(Nil(), List()))
	assert.True(t, Equal(Number(1), Number(1)))
	assert.False(t, Equal(Number(1), Number(2)))
	assert.False(t, Equal(Number(1), String("1")))
	assert.False(t, Equal(String("a"), Symbol("a")))
	assert.True(t, Equal(List(Number(1), List(String("a"))), List(Number(1), List(String("a")))))
	assert.False(t, Equal(List(Number(1)), List(Number(1), Number(2))))
	assert.False(t, Equal(List(Number(1)), Cons(Number(1), Number(2))))
	assert.True(t, Equal(f, f))
	assert.False(t, Equal(f, Fun("f", builtinList)))
	assert.True(t, Equal(g, g))
	assert.False(t, Equal(g, Lambda(nil, Nil(), env)))
}

func TestListBuilder(t *testing.T) {
	b := NewListBuilder()
	assert.True(t, b.List().IsNil())
	b.Append(Number(1))
	b.Append(Number(2), Number(3))
	lis := b.List()
	assert.Equal(t, "(1 2 3)", lis.String())

	cells, ok := SliceList(lis)
	require.True(t, ok)
	assert.Len(t, cells, 3)
	n, ok := Len(lis)
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	cells, ok = SliceList(Nil())
	assert.True(t, ok)
	assert.Len(t, cells, 0)

	_, ok = SliceList(Cons(Number(1), Number(2)))
	assert.False(t, ok)
	n, ok = Len(Cons(Number(1), Number(2)))
	assert.False(t, ok)
	assert.Equal(t, 1, n)
	_, ok = SliceList(Number(1))
	assert.False(t, ok)
}
