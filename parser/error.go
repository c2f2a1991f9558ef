package parser

import (
	"fmt"

	"github.com/clove-lang/clove/parser/token"
)

// ErrKind classifies syntax errors.
type ErrKind uint

// Possible ErrKind values.
const (
	UnexpectedToken ErrKind = iota
	UnexpectedEOF
	BadProgram

	numErrKinds
)

func (k ErrKind) String() string {
	kindStrings := [numErrKinds]string{
		UnexpectedToken: "unexpected-token",
		UnexpectedEOF:   "unexpected-eof",
		BadProgram:      "bad-program",
	}
	if k >= numErrKinds {
		return "invalid"
	}
	return kindStrings[k]
}

// Error is a syntax error.  Parsing does not attempt recovery or
// resynchronization; an Error is fatal to the parse that produced it.
type Error struct {
	Kind ErrKind
	Tok  *token.Token
	Msg  string
}

func (e *Error) Error() string {
	if e.Tok != nil && e.Tok.Source != nil {
		return fmt.Sprintf("%s: %s: %s", e.Tok.Source, e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

func (p *Parser) errorf(kind ErrKind, tok *token.Token, format string, v ...interface{}) *Error {
	return &Error{
		Kind: kind,
		Tok:  tok,
		Msg:  fmt.Sprintf(format, v...),
	}
}
