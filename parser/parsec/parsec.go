/*
Package parsec implements a combinator grammar accepting the clove surface
syntax.  It recognizes well-formed programs without building trees; the
canonical front end is the parser package.  The grammar:

	expr   := <term> | <list> | <call>
	list   := '[' <expr>* ']'
	call   := '(' <ident> <expr>* ')'
	term   := <string> | <number> | <ident>
	number := /-?[0-9][^\s()\[\]{}]*\/
	ident  := /[^\s()\[\]{}]+/
*/
package parsec

import (
	"bytes"
	"fmt"

	parsec "github.com/prataprc/goparsec"
)

// Error reports the byte offset at which a program stops being well formed.
type Error struct {
	Cursor int
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at byte %d", e.Cursor)
}

// Check scans text for a sequence of well-formed expressions.  It returns
// the number of bytes consumed and a non-nil error if the input was not
// consumed entirely.
func Check(text []byte) (int, error) {
	s := parsec.NewScanner(text)
	parser := newParsecParser()

	root, next := parser(s)
	for root != nil {
		s = next
		root, next = parser(s)
	}
	cursor := s.GetCursor()
	if !s.Endof() && len(bytes.TrimSpace(text[cursor:])) > 0 {
		return cursor, &Error{Cursor: cursor}
	}
	return cursor, nil
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	openB := parsec.Atom("[", "OPENB")
	closeB := parsec.Atom("]", "CLOSEB")
	number := parsec.Token(`-?[0-9][^\s()\[\]{}]*`, "NUMBER")
	ident := parsec.Token(`[^\s()\[\]{}]+`, "IDENT")
	term := parsec.OrdChoice(nil, // terminal token
		parsec.String(),
		number,
		ident, // ident comes last because it swallows anything
	)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	list := parsec.And(nil, openB, exprList, closeB)
	call := parsec.And(nil, openP, ident, exprList, closeP)
	expr = parsec.OrdChoice(nil, term, list, call)
	return expr
}
