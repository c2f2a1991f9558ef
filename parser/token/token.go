package token

import "fmt"

// Token is a lexical token read from clove source text.
type Token struct {
	Type   Type
	Text   string
	Source *Location
}

// Type identifies the kind of a Token.
type Type uint

// Type constants used by the clove lexer and parser.
const (
	INVALID Type = iota
	EOF

	// Atomic expressions & literals
	IDENT
	NUMBER
	STRING
	BOOL

	// Markers
	DOT
	COMMA

	// Delimiters
	PAREN_L
	PAREN_R
	BRACKET_L
	BRACKET_R
	BRACE_L
	BRACE_R

	numTokenTypes
)

func (typ Type) String() string {
	typeStrings := [numTokenTypes]string{
		INVALID:   "invalid",
		EOF:       "EOF",
		IDENT:     "identifier",
		NUMBER:    "number",
		STRING:    "string",
		BOOL:      "bool",
		DOT:       ".",
		COMMA:     ",",
		PAREN_L:   "(",
		PAREN_R:   ")",
		BRACKET_L: "[",
		BRACKET_R: "]",
		BRACE_L:   "{",
		BRACE_R:   "}",
	}
	if typ >= numTokenTypes {
		return typeStrings[INVALID]
	}
	return typeStrings[typ]
}

func (tok *Token) String() string {
	switch tok.Type {
	case IDENT, NUMBER, STRING, BOOL:
		return fmt.Sprintf("%s %q", tok.Type, tok.Text)
	default:
		return tok.Type.String()
	}
}

// Location points at the byte where a token starts.
type Location struct {
	File string
	Pos  int
	Line int // line number (starting at 1 when tracked)
}

func (loc *Location) String() string {
	if loc.Line == 0 {
		return fmt.Sprintf("%s[%d]", loc.File, loc.Pos)
	}
	return fmt.Sprintf("%s:%d", loc.File, loc.Line)
}
