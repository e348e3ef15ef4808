package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glox-lang/glox/token"
)

func kinds(t *testing.T, toks []token.Token) []token.Type {
	t.Helper()
	out := make([]token.Type, len(toks))
	for i, tok := range toks {
		out[i] = tok.Type
	}
	return out
}

func TestEmptySource(t *testing.T) {
	toks, err := New("").ScanTokens()
	require.NoError(t, err)
	assert.Equal(t, []token.Type{token.EOF}, kinds(t, toks))
}

func TestArithmeticTokens(t *testing.T) {
	toks, err := New("2 + 4").ScanTokens()
	require.NoError(t, err)
	require.Len(t, toks, 4)
	assert.Equal(t, token.Number, toks[0].Type)
	assert.Equal(t, 2.0, toks[0].Number)
	assert.Equal(t, token.Plus, toks[1].Type)
	assert.Equal(t, token.Number, toks[2].Type)
	assert.Equal(t, 4.0, toks[2].Number)
	assert.Equal(t, token.EOF, toks[3].Type)
}

func TestOneAndTwoCharacterLookahead(t *testing.T) {
	toks, err := New("!!=!==").ScanTokens()
	require.NoError(t, err)
	assert.Equal(t, []token.Type{
		token.Bang, token.BangEqual, token.BangEqual, token.Equal, token.EOF,
	}, kinds(t, toks))
}

func TestCommentsAreIgnored(t *testing.T) {
	toks, err := New("() // hello\n// last line").ScanTokens()
	require.NoError(t, err)
	assert.Equal(t, []token.Type{token.LeftParen, token.RightParen, token.EOF}, kinds(t, toks))
}

func TestTrailingDotIsNotPartOfNumber(t *testing.T) {
	toks, err := New("123.").ScanTokens()
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, token.Number, toks[0].Type)
	assert.Equal(t, "123", toks[0].Lexeme)
	assert.Equal(t, token.Dot, toks[1].Type)
}

func TestFractionalNumber(t *testing.T) {
	toks, err := New("3.14").ScanTokens()
	require.NoError(t, err)
	require.Len(t, toks, 2)
	assert.Equal(t, 3.14, toks[0].Number)
}

func TestMultilineStringTracksLineNumber(t *testing.T) {
	toks, err := New("\"a\nb\" print").ScanTokens()
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, "a\nb", toks[0].Literal)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line) // `print` keyword is on line 2
}

func TestUnterminatedStringIsAnError(t *testing.T) {
	_, err := New(`"unterminated`).ScanTokens()
	require.Error(t, err)
}

func TestUnicodeIdentifier(t *testing.T) {
	toks, err := New("var café = 1;").ScanTokens()
	require.NoError(t, err)
	assert.Equal(t, token.Var, toks[0].Type)
	assert.Equal(t, token.Identifier, toks[1].Type)
	assert.Equal(t, "café", toks[1].Lexeme)
}

func TestKeywordsAreRecognized(t *testing.T) {
	toks, err := New("and class else false for fun if nil or print return super this true var while").ScanTokens()
	require.NoError(t, err)
	want := []token.Type{
		token.And, token.Class, token.Else, token.False, token.For, token.Fun,
		token.If, token.Nil, token.Or, token.Print, token.Return, token.Super,
		token.This, token.True, token.Var, token.While, token.EOF,
	}
	assert.Equal(t, want, kinds(t, toks))
}

func TestUnexpectedCharacterIsAnError(t *testing.T) {
	_, err := New("@").ScanTokens()
	require.Error(t, err)
}

func TestScannerRoundTripLineNumbersAreMonotonic(t *testing.T) {
	toks, err := New("var a = 1;\nvar b = 2;\nprint a + b;").ScanTokens()
	require.NoError(t, err)
	last := 0
	for _, tok := range toks {
		assert.GreaterOrEqual(t, tok.Line, last)
		last = tok.Line
	}
}
