// Package clovetest provides a table-driven runner for end-to-end
// interpreter tests: each entry is a unit of source text and the rendering
// of the value (or error) it produces.
package clovetest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clove-lang/clove/lisp"
	"github.com/clove-lang/clove/parser"
)

// TestStep is one source expression and the expected rendering of its
// result.  Errors are compared against their Error() text.
type TestStep struct {
	Expr   string
	Result string
}

// TestSequence is a series of steps evaluated against a single interpreter,
// in order, sharing one global scope.
type TestSequence []TestStep

// TestSuiteEntry is a named test sequence.
type TestSuiteEntry struct {
	Name  string
	Tests TestSequence
}

// TestSuite is a set of named sequences, each run against a fresh
// interpreter.
type TestSuite []TestSuiteEntry

// Runner runs test suites.
type Runner struct {
	// Globals seeds an interpreter's global scope.  When nil, a scope with
	// the default natives plus def is used.
	Globals func() *lisp.Scope
}

// NewInterp returns a fresh interpreter for one test sequence.
func (r *Runner) NewInterp() (*lisp.Interp, error) {
	var globals *lisp.Scope
	if r.Globals != nil {
		globals = r.Globals()
	} else {
		globals = lisp.NewScope(nil)
		globals.AddNatives()
		globals.AddNatives(lisp.GlobalDef(globals))
	}
	return parser.NewInterpreter(globals)
}

// RunTestSuite runs every sequence in the suite as a subtest.
func (r *Runner) RunTestSuite(t *testing.T, suite TestSuite) {
	for _, entry := range suite {
		entry := entry
		t.Run(entry.Name, func(t *testing.T) {
			interp, err := r.NewInterp()
			require.NoError(t, err)
			for i, step := range entry.Tests {
				name := fmt.Sprintf("<test expr %d>", i+1)
				v, err := interp.RunNamed(name, step.Expr)
				var got string
				if err != nil {
					got = err.Error()
				} else {
					got = v.String()
				}
				if got != step.Result {
					t.Errorf("expr %d %q: got %q, want %q", i+1, step.Expr, got, step.Result)
				}
			}
		})
	}
}

// RunTestSuite runs suite with a default Runner.
func RunTestSuite(t *testing.T, suite TestSuite) {
	r := &Runner{}
	r.RunTestSuite(t, suite)
}
