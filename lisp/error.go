package lisp

import "fmt"

// Error conditions reported by the evaluator.
const (
	ErrUnboundSymbol = "unbound-symbol"
	ErrNotAFunction  = "not-a-function"
	ErrArity         = "arity-error"
	ErrCast          = "cast-error"
	ErrNative        = "native-error"
	ErrDepth         = "depth-error"
)

// Error is a runtime error tagged with a condition string.  Runtime errors
// are fatal to the expression being evaluated but never to the interpreter;
// global bindings made before the failure remain intact.
type Error struct {
	Condition string
	Msg       string
}

// Errorf returns an Error tagged with condition and a formatted message.
func Errorf(condition string, format string, v ...interface{}) *Error {
	return &Error{
		Condition: condition,
		Msg:       fmt.Sprintf(format, v...),
	}
}

func (e *Error) Error() string {
	return e.Condition + ": " + e.Msg
}
