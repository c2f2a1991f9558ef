package lexer

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clove-lang/clove/parser/token"
)

// delimiters terminate number and identifier tokens in addition to
// whitespace.
const delimiters = "()[]{}"

const eof = rune(-1)

// Lexer splits clove source text into tokens.  It scans with a cursor over
// the input and a single rune of lookahead and never backtracks.
type Lexer struct {
	file string
	src  string

	ch   rune // current rune, eof once the input is exhausted
	pos  int  // byte offset of ch
	next int  // byte offset of the rune following ch
	line int  // line number at pos

	startPos  int // pos at the first byte of the current token
	startLine int // line number at startPos

	err error
}

// New initializes and returns a Lexer scanning src.  The file name is only
// used in token locations and error messages.
func New(file, src string) *Lexer {
	lex := &Lexer{file: file, src: src, line: 1}
	lex.readChar()
	return lex
}

// Tokenize scans src until end of input and returns the complete token
// sequence, terminated by exactly one EOF token.  No tokens are returned if
// the source contains a lexical error.
func Tokenize(file, src string) ([]*token.Token, error) {
	lex := New(file, src)
	var toks []*token.Token
	for {
		tok, err := lex.NextToken()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks, nil
		}
	}
}

// NextToken scans and returns the next token in the source text.  After the
// end of input is reached NextToken returns EOF tokens forever.
func (lex *Lexer) NextToken() (*token.Token, error) {
	lex.skipWhitespace()
	lex.mark()
	if lex.err != nil {
		return nil, lex.err
	}
	switch lex.ch {
	case eof:
		return lex.emit(token.EOF, ""), nil
	case '(':
		return lex.charToken(token.PAREN_L), nil
	case ')':
		return lex.charToken(token.PAREN_R), nil
	case '[':
		return lex.charToken(token.BRACKET_L), nil
	case ']':
		return lex.charToken(token.BRACKET_R), nil
	case '{':
		return lex.charToken(token.BRACE_L), nil
	case '}':
		return lex.charToken(token.BRACE_R), nil
	case ',':
		return lex.charToken(token.COMMA), nil
	case '.':
		return lex.charToken(token.DOT), nil
	case '-':
		return lex.lexNumber()
	case '"':
		return lex.lexString()
	default:
		if isDigit(lex.ch) {
			return lex.lexNumber()
		}
		return lex.lexIdent(), nil
	}
}

// lexNumber reads a number greedily up to the next whitespace or delimiter
// rune.  The accumulated text must parse as a float64; a leading '-' commits
// the lexer to a number so a bare '-' is an invalid number rather than an
// identifier.
func (lex *Lexer) lexNumber() (*token.Token, error) {
	var b strings.Builder
	for lex.ch != eof && !unicode.IsSpace(lex.ch) && !isDelimiter(lex.ch) {
		b.WriteRune(lex.ch)
		lex.readChar()
	}
	text := b.String()
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return nil, lex.errorf(InvalidNumber, "invalid number literal: %q", text)
	}
	return lex.emit(token.NUMBER, text), nil
}

// lexString reads a quoted string.  Characters are consumed verbatim, there
// is no escape processing, and the input ending before the closing quote is
// an error.
func (lex *Lexer) lexString() (*token.Token, error) {
	var b strings.Builder
	lex.readChar() // opening quote
	for lex.ch != '"' {
		if lex.ch == eof {
			if lex.err != nil {
				return nil, lex.err
			}
			return nil, lex.errorf(UnclosedString, "unclosed string literal")
		}
		b.WriteRune(lex.ch)
		lex.readChar()
	}
	lex.readChar() // closing quote
	return lex.emit(token.STRING, b.String()), nil
}

// lexIdent reads a run of non-whitespace, non-delimiter runes.  The reserved
// identifiers true and false are reinterpreted as boolean literals.
func (lex *Lexer) lexIdent() *token.Token {
	var b strings.Builder
	for lex.ch != eof && !unicode.IsSpace(lex.ch) && !isDelimiter(lex.ch) {
		b.WriteRune(lex.ch)
		lex.readChar()
	}
	text := b.String()
	if text == "true" || text == "false" {
		return lex.emit(token.BOOL, text)
	}
	return lex.emit(token.IDENT, text)
}

func (lex *Lexer) charToken(typ token.Type) *token.Token {
	text := string(lex.ch)
	lex.readChar()
	return lex.emit(typ, text)
}

func (lex *Lexer) emit(typ token.Type, text string) *token.Token {
	return &token.Token{
		Type:   typ,
		Text:   text,
		Source: lex.locStart(),
	}
}

func (lex *Lexer) skipWhitespace() {
	for lex.ch != eof && unicode.IsSpace(lex.ch) {
		lex.readChar()
	}
}

// mark records the location of the token about to be scanned.
func (lex *Lexer) mark() {
	lex.startPos = lex.pos
	lex.startLine = lex.line
}

func (lex *Lexer) locStart() *token.Location {
	return &token.Location{
		File: lex.file,
		Pos:  lex.startPos,
		Line: lex.startLine,
	}
}

func (lex *Lexer) readChar() {
	if lex.ch == '\n' {
		lex.line++
	}
	if lex.next >= len(lex.src) {
		lex.pos = len(lex.src)
		lex.ch = eof
		return
	}
	c, n := utf8.DecodeRuneInString(lex.src[lex.next:])
	if c == utf8.RuneError && n == 1 {
		// Stop the cursor so token-reading loops terminate; the error is
		// reported in place of the next token.
		lex.err = lex.errorf(InvalidChar, "invalid utf-8 sequence in source text")
		lex.pos = lex.next
		lex.ch = eof
		return
	}
	lex.pos = lex.next
	lex.next += n
	lex.ch = c
}

func isDelimiter(c rune) bool {
	return strings.ContainsRune(delimiters, c)
}

func isDigit(c rune) bool {
	return '0' <= c && c <= '9'
}
