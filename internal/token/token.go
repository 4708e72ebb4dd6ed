package token

import "strings"

type Type int

const (
	NUMBER Type = iota
	OPERATOR
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case NUMBER:
		return "NUMBER"
	case OPERATOR:
		return "OPERATOR"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with its type and literal value.
// NUMBER literals are kept as scanned; conversion happens at evaluation time.
type Token struct {
	Type  Type
	Value string
}

func Number(literal string) Token {
	return Token{Type: NUMBER, Value: literal}
}

func Operator(op rune) Token {
	return Token{Type: OPERATOR, Value: string(op)}
}

// Op returns the operator symbol, or 0 for non-operator tokens.
func (t Token) Op() rune {
	if t.Type != OPERATOR || len(t.Value) != 1 {
		return 0
	}
	return rune(t.Value[0])
}

func (t Token) String() string {
	return t.Value
}

func IsOperator(ch rune) bool {
	return ch == '+' || ch == '-' || ch == '*' || ch == '/'
}

// Precedence returns 1 for + and -, 2 for * and /, and 0 otherwise.
func Precedence(op rune) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	default:
		return 0
	}
}

// FormatPostfix renders tokens separated by single spaces, e.g. "3 4 2 * +".
func FormatPostfix(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.Value
	}
	return strings.Join(parts, " ")
}
