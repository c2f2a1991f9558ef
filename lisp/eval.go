package lisp

// DefaultMaxDepth bounds evaluator recursion when no explicit limit is
// configured.  Deeply nested expressions and deeply recursive user-defined
// functions fail with a depth-error instead of exhausting the host stack.
const DefaultMaxDepth = 10000

// Eval evaluates node against scope and returns the resulting value.  Scope
// mutation is limited to child scopes created for function calls; evaluation
// is deterministic given a fixed scope state.
func Eval(node *Node, scope *Scope) (*Value, error) {
	ev := &evaluator{maxDepth: DefaultMaxDepth}
	return ev.eval(node, scope)
}

type evaluator struct {
	depth    int
	maxDepth int
}

func (ev *evaluator) eval(node *Node, scope *Scope) (*Value, error) {
	if ev.maxDepth > 0 && ev.depth >= ev.maxDepth {
		return nil, Errorf(ErrDepth, "maximum evaluation depth exceeded (%d)", ev.maxDepth)
	}
	ev.depth++
	defer func() { ev.depth-- }()

	switch node.Type {
	case NAtom:
		return ev.evalValue(node.Val, scope)
	case NVariable:
		v, ok := scope.Get(node.Name)
		if !ok {
			return nil, Errorf(ErrUnboundSymbol, "%s is not defined", node.Name)
		}
		return v, nil
	case NFunctionCall:
		return ev.evalCall(node, scope)
	case NProgram:
		return ev.evalBody(node.Nodes, scope)
	case NEOF:
		return Null(), nil
	default:
		return nil, Errorf(ErrNative, "cannot evaluate %s node", node.Type)
	}
}

// evalBody evaluates nodes in sequence against one scope, discarding all but
// the final result.  The EOF sentinel is skipped; an empty body yields null.
func (ev *evaluator) evalBody(nodes []*Node, scope *Scope) (*Value, error) {
	result := Null()
	for _, node := range nodes {
		if node.Type == NEOF {
			continue
		}
		v, err := ev.eval(node, scope)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// evalCall resolves and invokes the function bound to node.Name.  The arity
// check happens before any argument is evaluated.  Arguments are evaluated
// left to right in the caller's scope and bound in a fresh child scope; a
// user-defined body runs in a second scope nested under the bindings.
func (ev *evaluator) evalCall(node *Node, scope *Scope) (*Value, error) {
	v, ok := scope.Get(node.Name)
	if !ok {
		return nil, Errorf(ErrUnboundSymbol, "%s is not defined", node.Name)
	}
	if v.Type != VFunction {
		return nil, Errorf(ErrNotAFunction, "%s is not a function", node.Name)
	}
	fn := v.Fn
	if len(node.Nodes) != fn.Arity() {
		return nil, Errorf(ErrArity, "%s expects %d arguments (got %d)",
			node.Name, fn.Arity(), len(node.Nodes))
	}

	args := make([]*Value, len(node.Nodes))
	callScope := NewScope(scope)
	for i, argNode := range node.Nodes {
		arg, err := ev.eval(argNode, scope)
		if err != nil {
			return nil, err
		}
		args[i] = arg
		callScope.Set(fn.Params[i], arg)
	}

	if fn.IsNative() {
		r, err := fn.Native(args)
		if err != nil {
			if lerr, ok := err.(*Error); ok {
				return nil, lerr
			}
			return nil, Errorf(ErrNative, "%s: %s", node.Name, err)
		}
		if r == nil {
			r = Null()
		}
		return r, nil
	}

	bodyScope := NewScope(callScope)
	return ev.evalBody(fn.Body, bodyScope)
}

// evalValue forces a composite literal value.  List element nodes are each
// evaluated against scope and rewrapped as atoms, map values are forced, and
// every other kind is returned unchanged.  Functions are not closed over;
// they see the ambient chain only through ordinary lookup at call time.
func (ev *evaluator) evalValue(v *Value, scope *Scope) (*Value, error) {
	switch v.Type {
	case VList:
		elems := make([]*Node, len(v.List))
		for i, node := range v.List {
			elem, err := ev.eval(node, scope)
			if err != nil {
				return nil, err
			}
			elems[i] = Atom(elem)
		}
		return List(elems), nil
	case VMap:
		m := make(map[string]*Value, len(v.Map))
		for k, mv := range v.Map {
			forced, err := ev.evalValue(mv, scope)
			if err != nil {
				return nil, err
			}
			m[k] = forced
		}
		return Map(m), nil
	default:
		return v, nil
	}
}
