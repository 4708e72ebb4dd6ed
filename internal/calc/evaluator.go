package calc

import (
	"math"
	"strconv"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/token"
)

// Evaluator folds a postfix token sequence into a single value.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Eval evaluates postfix tokens. Number literals are parsed here, not by the tokenizer.
func (e *Evaluator) Eval(tokens []token.Token) (float64, error) {
	stack := make([]float64, 0, len(tokens))

	for _, tok := range tokens {
		switch tok.Type {
		case token.NUMBER:
			v, err := parseLiteral(tok.Value)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)
		case token.OPERATOR:
			if len(stack) < 2 {
				return 0, apperr.NewMalformedExpression()
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]

			v, err := apply(tok.Op(), a, b)
			if err != nil {
				return 0, err
			}
			if math.IsInf(v, 0) || math.IsNaN(v) {
				return 0, apperr.NewOutOfRange()
			}
			stack = append(stack, v)
		default:
			return 0, apperr.NewMalformedExpression()
		}
	}

	if len(stack) != 1 {
		return 0, apperr.NewNoResult()
	}

	return stack[0], nil
}

func apply(op rune, a, b float64) (float64, error) {
	switch op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, apperr.NewDivisionByZero()
		}
		return a / b, nil
	default:
		return 0, apperr.NewMalformedExpression()
	}
}

// parseLiteral accepts only the digit/dot runs the tokenizer produces.
// strconv alone would also take forms like "Inf" or "1e5".
func parseLiteral(literal string) (float64, error) {
	if literal == "" {
		return 0, apperr.NewParse(literal, nil)
	}
	for _, ch := range literal {
		if (ch < '0' || ch > '9') && ch != '.' {
			return 0, apperr.NewParse(literal, nil)
		}
	}

	v, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return 0, apperr.NewParse(literal, err)
	}
	return v, nil
}
