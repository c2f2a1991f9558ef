package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clove-lang/clove/parser/token"
)

func tokenTypes(toks []*token.Token) []token.Type {
	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	return types
}

func TestTokenizeCall(t *testing.T) {
	toks, err := Tokenize("test.clv", "(+ -1.2 2)")
	require.NoError(t, err)
	require.Len(t, toks, 6)
	assert.Equal(t, []token.Type{
		token.PAREN_L,
		token.IDENT,
		token.NUMBER,
		token.NUMBER,
		token.PAREN_R,
		token.EOF,
	}, tokenTypes(toks))
	assert.Equal(t, "+", toks[1].Text)
	assert.Equal(t, "-1.2", toks[2].Text)
	assert.Equal(t, "2", toks[3].Text)
}

func TestTokenizeDelimiters(t *testing.T) {
	toks, err := Tokenize("test.clv", "[1 2] {} , .")
	require.NoError(t, err)
	assert.Equal(t, []token.Type{
		token.BRACKET_L,
		token.NUMBER,
		token.NUMBER,
		token.BRACKET_R,
		token.BRACE_L,
		token.BRACE_R,
		token.COMMA,
		token.DOT,
		token.EOF,
	}, tokenTypes(toks))
}

func TestTokenizeString(t *testing.T) {
	toks, err := Tokenize("test.clv", `"hello world"`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "hello world", toks[0].Text)
	assert.Equal(t, token.EOF, toks[1].Type)
}

func TestTokenizeEmptyString(t *testing.T) {
	toks, err := Tokenize("test.clv", `""`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "", toks[0].Text)
}

func TestTokenizeBool(t *testing.T) {
	toks, err := Tokenize("test.clv", "true false truthy")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, token.BOOL, toks[0].Type)
	assert.Equal(t, "true", toks[0].Text)
	assert.Equal(t, token.BOOL, toks[1].Type)
	assert.Equal(t, "false", toks[1].Text)
	assert.Equal(t, token.IDENT, toks[2].Type)
	assert.Equal(t, "truthy", toks[2].Text)
}

func TestTokenizeIdentifiers(t *testing.T) {
	// Identifiers terminate only at whitespace or a delimiter rune.
	toks, err := Tokenize("test.clv", "hello1 foo.bar x")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, "hello1", toks[0].Text)
	assert.Equal(t, "foo.bar", toks[1].Text)
	assert.Equal(t, "x", toks[2].Text)
	for _, tok := range toks[:3] {
		assert.Equal(t, token.IDENT, tok.Type)
	}
}

func TestTokenizeIdentifierAgainstDelimiter(t *testing.T) {
	toks, err := Tokenize("test.clv", "(foo)")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, token.IDENT, toks[1].Type)
	assert.Equal(t, "foo", toks[1].Text)
}

func TestTokenizeEmptySource(t *testing.T) {
	toks, err := Tokenize("test.clv", "   \n\t ")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Type)
}

func TestTokenizeLocations(t *testing.T) {
	toks, err := Tokenize("test.clv", "a\nbb\n ccc")
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, 1, toks[0].Source.Line)
	assert.Equal(t, 0, toks[0].Source.Pos)
	assert.Equal(t, 2, toks[1].Source.Line)
	assert.Equal(t, 2, toks[1].Source.Pos)
	assert.Equal(t, 3, toks[2].Source.Line)
	assert.Equal(t, 6, toks[2].Source.Pos)
}

func TestTokenizeInvalidNumber(t *testing.T) {
	for _, src := range []string{"1.2.3", "-", "-abc", "12x", "1,2"} {
		_, err := Tokenize("test.clv", src)
		require.Error(t, err, "source %q", src)
		lerr, ok := err.(*Error)
		require.True(t, ok, "source %q", src)
		assert.Equal(t, InvalidNumber, lerr.Kind, "source %q", src)
	}
}

func TestTokenizeNegativeNumber(t *testing.T) {
	toks, err := Tokenize("test.clv", "-1.2 -0.5e3")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.NUMBER, toks[0].Type)
	assert.Equal(t, "-1.2", toks[0].Text)
	assert.Equal(t, token.NUMBER, toks[1].Type)
	assert.Equal(t, "-0.5e3", toks[1].Text)
}

func TestTokenizeUnclosedString(t *testing.T) {
	_, err := Tokenize("test.clv", `"hello`)
	require.Error(t, err)
	lerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, UnclosedString, lerr.Kind)
}

func TestTokenizeMultilineString(t *testing.T) {
	toks, err := Tokenize("test.clv", "\"a\nb\"")
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, "a\nb", toks[0].Text)
}

func TestTokenizeNoEscapes(t *testing.T) {
	// Backslashes are consumed verbatim; the first '"' always closes.
	toks, err := Tokenize("test.clv", `"a\n"`)
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, `a\n`, toks[0].Text)
}

func TestTokenizeInvalidUTF8(t *testing.T) {
	_, err := Tokenize("test.clv", "abc \xff def")
	require.Error(t, err)
	lerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, InvalidChar, lerr.Kind)
}

func TestNextTokenAfterEOF(t *testing.T) {
	lex := New("test.clv", "x")
	tok, err := lex.NextToken()
	require.NoError(t, err)
	assert.Equal(t, token.IDENT, tok.Type)
	for i := 0; i < 3; i++ {
		tok, err = lex.NextToken()
		require.NoError(t, err)
		assert.Equal(t, token.EOF, tok.Type)
	}
}
