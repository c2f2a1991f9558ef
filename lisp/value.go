package lisp

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
)

// ValueType is the type of a Value.
type ValueType uint

// Possible ValueType values.
const (
	VInvalid ValueType = iota
	VNumber
	VString
	VBool
	VList
	VMap
	VFunction
	VNull

	numValueTypes
)

var valueTypeStrings = [numValueTypes]string{
	VInvalid:  "INVALID",
	VNumber:   "number",
	VString:   "string",
	VBool:     "bool",
	VList:     "list",
	VMap:      "map",
	VFunction: "function",
	VNull:     "null",
}

func (t ValueType) String() string {
	if t >= numValueTypes {
		return valueTypeStrings[VInvalid]
	}
	return valueTypeStrings[t]
}

// Value is a clove runtime value, a tagged union discriminated by Type.
// List values hold unevaluated element nodes; evaluating a list literal
// forces each element (see Eval).
type Value struct {
	Type ValueType
	Num  float64
	Str  string
	Bool bool
	List []*Node
	Map  map[string]*Value
	Fn   *Function
}

// Number returns a Value representing the number x.
func Number(x float64) *Value {
	return &Value{Type: VNumber, Num: x}
}

// String returns a Value representing the string s.
func String(s string) *Value {
	return &Value{Type: VString, Str: s}
}

// Bool returns a Value representing the boolean b.
func Bool(b bool) *Value {
	return &Value{Type: VBool, Bool: b}
}

// List returns a Value holding the given unevaluated element nodes.
func List(nodes []*Node) *Value {
	return &Value{Type: VList, List: nodes}
}

// Map returns a Value holding the given name to value mapping.
func Map(m map[string]*Value) *Value {
	return &Value{Type: VMap, Map: m}
}

// Null returns a Value representing the absence of a result.
func Null() *Value {
	return &Value{Type: VNull}
}

// IsNull returns true if v represents the absence of a result.
func (v *Value) IsNull() bool {
	return v.Type == VNull
}

// Equal returns true if v and w are structurally equal.  Numbers compare
// with raw floating point equality.
func (v *Value) Equal(w *Value) bool {
	if v == nil || w == nil {
		return v == w
	}
	if v.Type != w.Type {
		return false
	}
	switch v.Type {
	case VNumber:
		return v.Num == w.Num
	case VString:
		return v.Str == w.Str
	case VBool:
		return v.Bool == w.Bool
	case VList:
		if len(v.List) != len(w.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(w.List[i]) {
				return false
			}
		}
		return true
	case VMap:
		if len(v.Map) != len(w.Map) {
			return false
		}
		for k, vv := range v.Map {
			wv, ok := w.Map[k]
			if !ok || !vv.Equal(wv) {
				return false
			}
		}
		return true
	case VFunction:
		return v.Fn == w.Fn
	case VNull:
		return true
	default:
		return false
	}
}

func (v *Value) String() string {
	switch v.Type {
	case VNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case VString:
		return strconv.Quote(v.Str)
	case VBool:
		return strconv.FormatBool(v.Bool)
	case VList:
		var buf bytes.Buffer
		buf.WriteString("[")
		for i, c := range v.List {
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(c.String())
		}
		buf.WriteString("]")
		return buf.String()
	case VMap:
		keys := make([]string, 0, len(v.Map))
		for k := range v.Map {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var buf bytes.Buffer
		buf.WriteString("{")
		for i, k := range keys {
			if i > 0 {
				buf.WriteString(" ")
			}
			fmt.Fprintf(&buf, "%s %s", k, v.Map[k])
		}
		buf.WriteString("}")
		return buf.String()
	case VFunction:
		return v.Fn.String()
	case VNull:
		return "null"
	default:
		return fmt.Sprintf("%#v", v)
	}
}
