package lisp

// NativeDef declares a native function for registration in a scope.
type NativeDef struct {
	Name   string
	Params []string
	Fn     NativeFunc
}

// AddNatives binds the given native functions to their names in s.  When
// called with no arguments AddNatives binds the DefaultNatives.  Natives are
// bound before any Run call; rebinding an existing name is a programming
// error and panics.
func (s *Scope) AddNatives(defs ...*NativeDef) {
	if len(defs) == 0 {
		defs = DefaultNatives()
	}
	for _, def := range defs {
		if _, ok := s.Get(def.Name); ok {
			panic("native already defined: " + def.Name)
		}
		s.Set(def.Name, Native(def.Name, def.Params, def.Fn))
	}
}

// DefaultNatives returns a minimal prelude.  The language defines only the
// mechanism for native functions; these exist to give the REPL something to
// call and to exercise the scalar casts.
func DefaultNatives() []*NativeDef {
	return []*NativeDef{
		{"+", []string{"a", "b"}, nativeArith(func(a, b float64) (float64, error) {
			return a + b, nil
		})},
		// A bare '-' lexes as a number literal, so subtraction is named sub.
		{"sub", []string{"a", "b"}, nativeArith(func(a, b float64) (float64, error) {
			return a - b, nil
		})},
		{"*", []string{"a", "b"}, nativeArith(func(a, b float64) (float64, error) {
			return a * b, nil
		})},
		{"/", []string{"a", "b"}, nativeArith(func(a, b float64) (float64, error) {
			if b == 0 {
				return 0, Errorf(ErrNative, "division by zero")
			}
			return a / b, nil
		})},
		{"str", []string{"x"}, func(args []*Value) (*Value, error) {
			s, err := CastString(args[0])
			if err != nil {
				return nil, err
			}
			return String(s), nil
		}},
		{"num", []string{"x"}, func(args []*Value) (*Value, error) {
			x, err := CastNumber(args[0])
			if err != nil {
				return nil, err
			}
			return Number(x), nil
		}},
		{"bool", []string{"x"}, func(args []*Value) (*Value, error) {
			b, err := CastBool(args[0])
			if err != nil {
				return nil, err
			}
			return Bool(b), nil
		}},
		{"eq?", []string{"a", "b"}, func(args []*Value) (*Value, error) {
			return Bool(args[0].Equal(args[1])), nil
		}},
		{"len", []string{"x"}, func(args []*Value) (*Value, error) {
			switch args[0].Type {
			case VList:
				return Number(float64(len(args[0].List))), nil
			case VMap:
				return Number(float64(len(args[0].Map))), nil
			case VString:
				return Number(float64(len(args[0].Str))), nil
			default:
				return nil, Errorf(ErrCast, "cannot take the length of %s", args[0].Type)
			}
		}},
	}
}

// GlobalDef returns a native function definition that binds names in
// globals, letting source text create bindings that persist across Run
// calls: (def "x" 1).  The callback closes over the scope because natives
// receive only evaluated argument values.
func GlobalDef(globals *Scope) *NativeDef {
	return &NativeDef{
		Name:   "def",
		Params: []string{"name", "value"},
		Fn: func(args []*Value) (*Value, error) {
			name, err := CastString(args[0])
			if err != nil {
				return nil, err
			}
			globals.Set(name, args[1])
			return args[1], nil
		},
	}
}

func nativeArith(op func(a, b float64) (float64, error)) NativeFunc {
	return func(args []*Value) (*Value, error) {
		a, err := CastNumber(args[0])
		if err != nil {
			return nil, err
		}
		b, err := CastNumber(args[1])
		if err != nil {
			return nil, err
		}
		x, err := op(a, b)
		if err != nil {
			return nil, err
		}
		return Number(x), nil
	}
}
