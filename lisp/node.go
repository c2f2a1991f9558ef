package lisp

import (
	"bytes"
	"fmt"
)

// NodeType is the type of a Node.
type NodeType uint

// Possible NodeType values.
const (
	NInvalid NodeType = iota
	NAtom
	NVariable
	NFunctionCall
	NProgram
	NEOF

	numNodeTypes
)

var nodeTypeStrings = [numNodeTypes]string{
	NInvalid:      "INVALID",
	NAtom:         "atom",
	NVariable:     "variable",
	NFunctionCall: "function-call",
	NProgram:      "program",
	NEOF:          "EOF",
}

func (t NodeType) String() string {
	if t >= numNodeTypes {
		return nodeTypeStrings[NInvalid]
	}
	return nodeTypeStrings[t]
}

// Node is a node of the syntax tree produced by the parser.  Nodes are
// tagged unions discriminated by Type: NAtom carries Val, NVariable and
// NFunctionCall carry Name, NFunctionCall and NProgram carry Nodes.
//
// A program node's list is never empty and always ends with the NEOF
// sentinel; the parser fails rather than produce a program violating that.
type Node struct {
	Type  NodeType
	Val   *Value
	Name  string
	Nodes []*Node
}

// Atom returns a node wrapping the literal value v.
func Atom(v *Value) *Node {
	return &Node{Type: NAtom, Val: v}
}

// Variable returns a node referencing the identifier name, resolved against
// a scope at evaluation time.
func Variable(name string) *Node {
	return &Node{Type: NVariable, Name: name}
}

// FunctionCall returns a node invoking name with the given argument nodes.
func FunctionCall(name string, args []*Node) *Node {
	return &Node{Type: NFunctionCall, Name: name, Nodes: args}
}

// Program returns a top-level program node.
func Program(nodes []*Node) *Node {
	return &Node{Type: NProgram, Nodes: nodes}
}

// EOF returns the sentinel node terminating a program.
func EOF() *Node {
	return &Node{Type: NEOF}
}

// Equal returns true if n and m are structurally equal trees.
func (n *Node) Equal(m *Node) bool {
	if n == nil || m == nil {
		return n == m
	}
	if n.Type != m.Type || n.Name != m.Name {
		return false
	}
	if !n.Val.Equal(m.Val) {
		return false
	}
	if len(n.Nodes) != len(m.Nodes) {
		return false
	}
	for i := range n.Nodes {
		if !n.Nodes[i].Equal(m.Nodes[i]) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	switch n.Type {
	case NAtom:
		return n.Val.String()
	case NVariable:
		return n.Name
	case NFunctionCall:
		var buf bytes.Buffer
		buf.WriteString("(")
		buf.WriteString(n.Name)
		for _, arg := range n.Nodes {
			buf.WriteString(" ")
			buf.WriteString(arg.String())
		}
		buf.WriteString(")")
		return buf.String()
	case NProgram:
		var buf bytes.Buffer
		for i, c := range n.Nodes {
			if c.Type == NEOF {
				continue
			}
			if i > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(c.String())
		}
		return buf.String()
	case NEOF:
		return "EOF"
	default:
		return fmt.Sprintf("%#v", n)
	}
}
