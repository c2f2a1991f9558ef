package lisp

// Reader parses a unit of source text into a program node.  The canonical
// implementation lives in the parser package; the indirection keeps the
// value model free of a dependency on the front end.
type Reader interface {
	Read(name string, source string) (*Node, error)
}

// Config configures an interpreter during construction.
type Config func(in *Interp) error

// WithReader returns a Config that makes the interpreter parse source text
// with r.
func WithReader(r Reader) Config {
	return func(in *Interp) error {
		in.reader = r
		return nil
	}
}

// WithMaxDepth returns a Config bounding evaluator recursion at n.  A zero n
// disables the bound, leaving recursion limited only by the host stack.
func WithMaxDepth(n int) Config {
	return func(in *Interp) error {
		in.maxDepth = n
		return nil
	}
}

// Interp evaluates units of source text against a persistent global scope.
// Bindings created by one Run call are visible to the next, including runs
// following a failed call.  An Interp must not be used from multiple
// goroutines concurrently.
type Interp struct {
	global   *Scope
	reader   Reader
	maxDepth int
}

// NewInterpreter initializes and returns an Interp.  When globals is nil a
// fresh global scope with no parent is created.
func NewInterpreter(globals *Scope, cfgs ...Config) (*Interp, error) {
	if globals == nil {
		globals = NewScope(nil)
	}
	in := &Interp{
		global:   globals,
		maxDepth: DefaultMaxDepth,
	}
	for _, cfg := range cfgs {
		if err := cfg(in); err != nil {
			return nil, err
		}
	}
	return in, nil
}

// Globals returns the interpreter's global scope.
func (in *Interp) Globals() *Scope {
	return in.global
}

// Run lexes, parses, and evaluates one unit of source text against the
// interpreter's global scope.
func (in *Interp) Run(source string) (*Value, error) {
	return in.RunNamed("<run>", source)
}

// RunNamed is Run with an explicit name used in error locations.
func (in *Interp) RunNamed(name string, source string) (*Value, error) {
	if in.reader == nil {
		return nil, Errorf(ErrNative, "interpreter has no reader configured")
	}
	prog, err := in.reader.Read(name, source)
	if err != nil {
		return nil, err
	}
	ev := &evaluator{maxDepth: in.maxDepth}
	return ev.eval(prog, in.global)
}
