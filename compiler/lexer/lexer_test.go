package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minipar-lang/minipar/compiler/lexer"
	"github.com/minipar-lang/minipar/compiler/token"
)

func tags(toks []token.Token) []token.Tag {
	var out []token.Tag
	for _, t := range toks {
		out = append(out, t.Tag)
	}
	return out
}

func TestScansKeywordsAndIdentifiers(t *testing.T) {
	toks, errs := lexer.New("func while x_1", nil).ScanTokens()
	require.Empty(t, errs)
	assert.Equal(t, []token.Tag{token.FUNC, token.WHILE, token.ID, token.EOF}, tags(toks))
}

func TestScansIntegerAndFloatNumbers(t *testing.T) {
	toks, errs := lexer.New("42 3.14 .5", nil).ScanTokens()
	require.Empty(t, errs)
	require.Len(t, toks, 4)
	assert.Equal(t, "42", toks[0].Value)
	assert.Equal(t, "3.14", toks[1].Value)
	assert.Equal(t, ".5", toks[2].Value)
}

func TestScansStringLiteralStripsQuotes(t *testing.T) {
	toks, errs := lexer.New(`"hello world"`, nil).ScanTokens()
	require.Empty(t, errs)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Tag)
	assert.Equal(t, "hello world", toks[0].Value)
}

func TestSkipsLineAndBlockComments(t *testing.T) {
	toks, errs := lexer.New("x # trailing comment\n/* block\ncomment */y", nil).ScanTokens()
	require.Empty(t, errs)
	assert.Equal(t, []token.Tag{token.ID, token.ID, token.EOF}, tags(toks))
}

func TestTracksLineNumbersAcrossNewlinesAndBlockComments(t *testing.T) {
	toks, errs := lexer.New("a\nb\n/*\n\n*/c", nil).ScanTokens()
	require.Empty(t, errs)
	require.Len(t, toks, 4)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 5, toks[2].Line)
}

func TestScansMultiCharOperatorsBeforeSingleChar(t *testing.T) {
	toks, errs := lexer.New("a == b != c <= d >= e && f || g", nil).ScanTokens()
	require.Empty(t, errs)
	got := tags(toks)
	want := []token.Tag{
		token.ID, token.EQ, token.ID, token.NEQ, token.ID, token.LTE, token.ID,
		token.GTE, token.ID, token.AND, token.ID, token.OR, token.ID, token.EOF,
	}
	assert.Equal(t, want, got)
}

func TestScansArrowDistinctFromMinusThenGreater(t *testing.T) {
	toks, errs := lexer.New("a -> b", nil).ScanTokens()
	require.Empty(t, errs)
	assert.Equal(t, []token.Tag{token.ID, token.RARROW, token.ID, token.EOF}, tags(toks))
}

func TestScansSingleCharPunctuation(t *testing.T) {
	toks, errs := lexer.New("(){}[],:.!", nil).ScanTokens()
	require.Empty(t, errs)
	want := []token.Tag{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACKET, token.RBRACKET, token.COMMA, token.COLON,
		token.DOT, token.BANG, token.EOF,
	}
	assert.Equal(t, want, tags(toks))
}

func TestUnrecognizedByteFallsThroughToOtherWithoutAborting(t *testing.T) {
	toks, errs := lexer.New("a ? b", nil).ScanTokens()
	require.Empty(t, errs)
	require.Len(t, toks, 4)
	assert.Equal(t, token.OTHER, toks[1].Tag)
	assert.Equal(t, "?", toks[1].Value)
}

func TestEmptySourceProducesOnlyEOF(t *testing.T) {
	toks, errs := lexer.New("", nil).ScanTokens()
	require.Empty(t, errs)
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Tag)
}
