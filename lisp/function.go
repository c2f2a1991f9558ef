package lisp

import (
	"bytes"
	"fmt"
)

// NativeFunc is a host callback implementing a native function.  It receives
// the evaluated argument values in call order.
type NativeFunc func(args []*Value) (*Value, error)

// Function is a callable value: either a native function backed by a host
// callback or a user-defined function backed by a body of nodes.  Both
// variants carry a fixed ordered parameter list; arity is its length and is
// checked at call time.
type Function struct {
	Name   string
	Params []string

	// Exactly one of Native and Body is populated.
	Native NativeFunc
	Body   []*Node
}

// Native returns a function value named name that invokes fn when called.
func Native(name string, params []string, fn NativeFunc) *Value {
	return &Value{Type: VFunction, Fn: &Function{
		Name:   name,
		Params: params,
		Native: fn,
	}}
}

// Lambda returns a user-defined function value with the given parameter
// names and body nodes.
func Lambda(params []string, body []*Node) *Value {
	return &Value{Type: VFunction, Fn: &Function{
		Params: params,
		Body:   body,
	}}
}

// IsNative returns true if fn is backed by a host callback.
func (fn *Function) IsNative() bool {
	return fn.Native != nil
}

// Arity returns the number of arguments fn requires.
func (fn *Function) Arity() int {
	return len(fn.Params)
}

func (fn *Function) String() string {
	if fn.IsNative() {
		return fmt.Sprintf("<native ``%s''>", fn.Name)
	}
	var buf bytes.Buffer
	buf.WriteString("(fn [")
	for i, p := range fn.Params {
		if i > 0 {
			buf.WriteString(" ")
		}
		buf.WriteString(p)
	}
	buf.WriteString("]")
	for _, n := range fn.Body {
		buf.WriteString(" ")
		buf.WriteString(n.String())
	}
	buf.WriteString(")")
	return buf.String()
}
