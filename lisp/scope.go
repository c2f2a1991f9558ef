package lisp

// Scope is a mutable name to value mapping with an optional parent,
// forming a singly-linked chain rooted at a global scope with no parent.
// Lookups walk the chain outward; writes always land in the receiver,
// shadowing rather than mutating ancestor bindings.
//
// A Scope must not be shared across concurrent evaluations.
type Scope struct {
	vars   map[string]*Value
	parent *Scope
}

// NewScope initializes and returns a new Scope chained under parent.
// A nil parent produces a root (global) scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		vars:   make(map[string]*Value),
		parent: parent,
	}
}

// Get returns the value bound to name in the innermost scope that binds it.
func (s *Scope) Get(name string) (*Value, bool) {
	for env := s; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set binds name to v in s itself, even when an ancestor already binds the
// same name.
func (s *Scope) Set(name string, v *Value) {
	s.vars[name] = v
}

// Len returns the number of bindings in s itself, excluding ancestors.
func (s *Scope) Len() int {
	return len(s.vars)
}
