package lexer

import (
	"fmt"

	"github.com/clove-lang/clove/parser/token"
)

// ErrKind classifies lexical errors.
type ErrKind uint

// Possible ErrKind values.
const (
	InvalidChar ErrKind = iota
	InvalidNumber
	UnclosedString

	numErrKinds
)

func (k ErrKind) String() string {
	kindStrings := [numErrKinds]string{
		InvalidChar:    "invalid-char",
		InvalidNumber:  "invalid-number",
		UnclosedString: "unclosed-string",
	}
	if k >= numErrKinds {
		return "invalid"
	}
	return kindStrings[k]
}

// Error is a lexical error.  Errors are fatal to the tokenize call that
// produced them; no partial token stream accompanies an Error.
type Error struct {
	Kind ErrKind
	Loc  *token.Location
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Loc, e.Kind, e.Msg)
}

func (lex *Lexer) errorf(kind ErrKind, format string, v ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Loc:  &token.Location{File: lex.file, Pos: lex.startPos, Line: lex.startLine},
		Msg:  fmt.Sprintf(format, v...),
	}
}
