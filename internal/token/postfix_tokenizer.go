package token

import (
	"unicode"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
)

// PostfixTokenizer scans an infix arithmetic expression and emits its tokens in
// postfix (reverse Polish) order using the shunting-yard algorithm.
// It holds no state between calls and is safe for concurrent use.
type PostfixTokenizer struct{}

func NewPostfixTokenizer() *PostfixTokenizer {
	return &PostfixTokenizer{}
}

// Tokenize converts the input into postfix tokens.
// Example: Input: `(3 + 4) * 2` Output: `3 4 + 2 *`
func (t *PostfixTokenizer) Tokenize(input string) ([]Token, error) {
	s := &scanner{input: []rune(input)}

	output := make([]Token, 0, len(s.input))
	var ops []Token

	for s.skipWhitespace(); s.pos < len(s.input); s.skipWhitespace() {
		ch := s.input[s.pos]
		switch {
		case isNumberChar(ch):
			output = append(output, s.readNumber())
		case ch == '(':
			ops = append(ops, Token{Type: LPAREN, Value: "("})
			s.pos++
		case ch == ')':
			for len(ops) > 0 && ops[len(ops)-1].Type != LPAREN {
				output = append(output, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return nil, apperr.NewUnbalancedParentheses()
			}
			ops = ops[:len(ops)-1]
			s.pos++
		case IsOperator(ch):
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Type != OPERATOR || Precedence(top.Op()) < Precedence(ch) {
					break
				}
				output = append(output, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, Operator(ch))
			s.pos++
		default:
			return nil, apperr.NewUnknownSymbol(ch)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if top.Type == LPAREN {
			return nil, apperr.NewUnbalancedParentheses()
		}
		output = append(output, top)
		ops = ops[:len(ops)-1]
	}

	return output, nil
}

type scanner struct {
	input []rune
	pos   int
}

func (s *scanner) skipWhitespace() {
	for s.pos < len(s.input) && unicode.IsSpace(s.input[s.pos]) {
		s.pos++
	}
}

// readNumber consumes the maximal run of digits and dots. The literal shape is
// not checked here; "1.2.3" is returned as is.
func (s *scanner) readNumber() Token {
	start := s.pos
	for s.pos < len(s.input) && isNumberChar(s.input[s.pos]) {
		s.pos++
	}
	return Number(string(s.input[start:s.pos]))
}

func isNumberChar(ch rune) bool {
	return (ch >= '0' && ch <= '9') || ch == '.'
}
