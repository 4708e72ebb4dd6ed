package token

import (
	"testing"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostfixTokenizer_Tokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "single number", input: "42", expected: "42"},
		{name: "decimal literal", input: "3.14", expected: "3.14"},
		{name: "leading dot literal", input: ".5 + 1", expected: ".5 1 +"},
		{name: "precedence", input: "3 + 4 * 2", expected: "3 4 2 * +"},
		{name: "parentheses override precedence", input: "(3 + 4) * 2", expected: "3 4 + 2 *"},
		{name: "left associative minus", input: "8 - 3 - 2", expected: "8 3 - 2 -"},
		{name: "left associative division", input: "100 / 10 / 5", expected: "100 10 / 5 /"},
		{name: "mixed same precedence", input: "2 * 3 / 4", expected: "2 3 * 4 /"},
		{name: "nested parentheses", input: "((1 + 2) * (3 - 4)) / 5", expected: "1 2 + 3 4 - * 5 /"},
		{name: "no whitespace", input: "1+2*3-4/2", expected: "1 2 3 * + 4 2 / -"},
		{name: "tabs and newlines", input: "\t1 +\n2\r\n", expected: "1 2 +"},
		{name: "malformed literal passes through", input: "1.2.3 + 1", expected: "1.2.3 1 +"},
		{name: "consecutive operators pass through", input: "1++2", expected: "1 + 2 +"},
		{name: "empty parentheses", input: "()", expected: ""},
	}

	tokenizer := NewPostfixTokenizer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := tokenizer.Tokenize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, FormatPostfix(tokens))
		})
	}
}

func TestPostfixTokenizer_TokenTypes(t *testing.T) {
	tokens, err := NewPostfixTokenizer().Tokenize("(1 + 2) * 3")
	require.NoError(t, err)

	expectedTypes := []Type{NUMBER, NUMBER, OPERATOR, NUMBER, OPERATOR}
	require.Len(t, tokens, len(expectedTypes))
	for i, tok := range tokens {
		assert.Equal(t, expectedTypes[i], tok.Type, "token %d (%s)", i, tok)
		assert.NotEqual(t, LPAREN, tok.Type)
		assert.NotEqual(t, RPAREN, tok.Type)
	}
}

func TestPostfixTokenizer_Empty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		tokens, err := NewPostfixTokenizer().Tokenize(input)
		require.NoError(t, err)
		assert.Empty(t, tokens)
	}
}

func TestPostfixTokenizer_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  apperr.Code
		msg   string
	}{
		{name: "missing close", input: "(1 + 2", code: apperr.ErrUnbalancedParentheses, msg: "unbalanced parentheses"},
		{name: "missing open", input: "1 + 2)", code: apperr.ErrUnbalancedParentheses, msg: "unbalanced parentheses"},
		{name: "stray close first", input: ")(", code: apperr.ErrUnbalancedParentheses, msg: "unbalanced parentheses"},
		{name: "dollar", input: "1 $ 2", code: apperr.ErrUnknownSymbol, msg: "unknown symbol: $"},
		{name: "identifier", input: "x + 1", code: apperr.ErrUnknownSymbol, msg: "unknown symbol: x"},
		{name: "exponent", input: "2 ^ 3", code: apperr.ErrUnknownSymbol, msg: "unknown symbol: ^"},
		{name: "non ascii digit", input: "١ + 1", code: apperr.ErrUnknownSymbol, msg: "unknown symbol: ١"},
		{name: "first problem wins", input: "(1 $ 2", code: apperr.ErrUnknownSymbol, msg: "unknown symbol: $"},
	}

	tokenizer := NewPostfixTokenizer()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := tokenizer.Tokenize(tt.input)
			require.Error(t, err)
			assert.Nil(t, tokens)

			var se *apperr.SyntaxError
			require.ErrorAs(t, err, &se)
			assert.ErrorIs(t, err, tt.code)
			assert.Equal(t, tt.msg, se.Error())
		})
	}
}

func TestPrecedence(t *testing.T) {
	assert.Equal(t, 1, Precedence('+'))
	assert.Equal(t, 1, Precedence('-'))
	assert.Equal(t, 2, Precedence('*'))
	assert.Equal(t, 2, Precedence('/'))
	assert.Equal(t, 0, Precedence('('))
}

func TestToken_Op(t *testing.T) {
	assert.Equal(t, '*', Operator('*').Op())
	assert.Equal(t, rune(0), Number("12").Op())
}
