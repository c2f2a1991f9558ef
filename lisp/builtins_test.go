package lisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNativesDefault(t *testing.T) {
	scope := NewScope(nil)
	scope.AddNatives()
	for _, name := range []string{"+", "sub", "*", "/", "str", "num", "bool", "eq?", "len"} {
		v, ok := scope.Get(name)
		require.True(t, ok, "missing native %s", name)
		require.Equal(t, VFunction, v.Type)
		assert.True(t, v.Fn.IsNative())
		assert.Equal(t, name, v.Fn.Name)
	}
}

func TestAddNativesRebindPanics(t *testing.T) {
	scope := NewScope(nil)
	scope.AddNatives()
	assert.Panics(t, func() {
		scope.AddNatives(&NativeDef{Name: "+", Params: []string{"a", "b"}})
	})
}

func TestNativeArithmetic(t *testing.T) {
	scope := NewScope(nil)
	scope.AddNatives()
	tests := []struct {
		call *Node
		want *Value
	}{
		{FunctionCall("+", []*Node{Atom(Number(1)), Atom(Number(2))}), Number(3)},
		{FunctionCall("sub", []*Node{Atom(Number(1)), Atom(Number(2))}), Number(-1)},
		{FunctionCall("*", []*Node{Atom(Number(3)), Atom(Number(4))}), Number(12)},
		{FunctionCall("/", []*Node{Atom(Number(8)), Atom(Number(2))}), Number(4)},
		// casts apply to scalar arguments
		{FunctionCall("+", []*Node{Atom(String("1.5")), Atom(Bool(true))}), Number(2.5)},
	}
	for _, test := range tests {
		got, err := Eval(test.call, scope)
		require.NoError(t, err, "%s", test.call)
		assert.True(t, got.Equal(test.want), "%s: got %s", test.call, got)
	}
}

func TestNativeDivisionByZero(t *testing.T) {
	scope := NewScope(nil)
	scope.AddNatives()
	_, err := Eval(FunctionCall("/", []*Node{Atom(Number(1)), Atom(Number(0))}), scope)
	require.Error(t, err)
	assert.Equal(t, ErrNative, err.(*Error).Condition)
}

func TestNativeEq(t *testing.T) {
	scope := NewScope(nil)
	scope.AddNatives()
	got, err := Eval(FunctionCall("eq?", []*Node{Atom(Number(1)), Atom(Number(1))}), scope)
	require.NoError(t, err)
	assert.True(t, got.Equal(Bool(true)))
	got, err = Eval(FunctionCall("eq?", []*Node{Atom(Number(1)), Atom(String("1"))}), scope)
	require.NoError(t, err)
	assert.True(t, got.Equal(Bool(false)), "no coercion in structural equality")
}

func TestNativeLen(t *testing.T) {
	scope := NewScope(nil)
	scope.AddNatives()
	list := Atom(List([]*Node{Atom(Number(1)), Atom(Number(2))}))
	got, err := Eval(FunctionCall("len", []*Node{list}), scope)
	require.NoError(t, err)
	assert.True(t, got.Equal(Number(2)))

	_, err = Eval(FunctionCall("len", []*Node{Atom(Number(1))}), scope)
	require.Error(t, err)
	assert.Equal(t, ErrCast, err.(*Error).Condition)
}

func TestGlobalDef(t *testing.T) {
	globals := NewScope(nil)
	globals.AddNatives(GlobalDef(globals))
	v, err := Eval(FunctionCall("def", []*Node{
		Atom(String("x")),
		Atom(Number(7)),
	}), globals)
	require.NoError(t, err)
	assert.True(t, v.Equal(Number(7)), "def yields the bound value")
	got, ok := globals.Get("x")
	require.True(t, ok)
	assert.True(t, got.Equal(Number(7)))
}
