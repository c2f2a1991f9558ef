package clovetest

import (
	"testing"
)

func TestEval(t *testing.T) {
	tests := TestSuite{
		{"literals", TestSequence{
			{"3", "3"},
			{"-1.2", "-1.2"},
			{`"hello"`, `"hello"`},
			{"true", "true"},
			{"false", "false"},
		}},
		{"list literals", TestSequence{
			{"[]", "[]"},
			{"[1 2 3]", "[1 2 3]"},
			{`[1 "a" [true]]`, `[1 "a" [true]]`},
			{"[(+ 1 2)]", "[3]"},
		}},
		{"arithmetic", TestSequence{
			{"(+ 1 2)", "3"},
			{"(+ -1.2 2)", "0.8"},
			{"(sub 1 2)", "-1"},
			{"(* 3 4)", "12"},
			{"(/ 8 2)", "4"},
			{"(+ (* 2 3) (/ 8 4))", "8"},
		}},
		{"casts", TestSequence{
			{`(num "1.5")`, "1.5"},
			{"(num true)", "1"},
			{"(str 1.2)", `"1.2"`},
			{"(str false)", `"false"`},
			{`(bool "true")`, "true"},
			{"(bool 0)", "false"},
			{"(num [])", "cast-error: cannot cast list to number"},
		}},
		{"equality", TestSequence{
			{"(eq? 1 1)", "true"},
			{`(eq? 1 "1")`, "false"},
			{"(eq? [1 2] [1 2])", "true"},
		}},
		{"definitions", TestSequence{
			{`(def "x" 41)`, "41"},
			{"x", "41"},
			{"(+ x 1)", "42"},
			{`(def "x" 1)`, "1"},
			{"x", "1"},
		}},
		{"sequencing", TestSequence{
			{"1 2 3", "3"},
			{`(def "a" 1) (def "b" 2) (+ a b)`, "3"},
		}},
		{"errors", TestSequence{
			{"(bogus 1 2)", "unbound-symbol: bogus is not defined"},
			{`(def "x" 1)`, "1"},
			{"(x)", "not-a-function: x is not a function"},
			{"(+ 1)", "arity-error: + expects 2 arguments (got 1)"},
			{"(/ 1 0)", "native-error: division by zero"},
			// the scope survives the failures above
			{"x", "1"},
		}},
	}
	RunTestSuite(t, tests)
}
