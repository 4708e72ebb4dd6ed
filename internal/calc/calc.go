// Package calc evaluates infix arithmetic expressions (+ - * / and parentheses
// over non-negative decimal literals). Evaluation is a pure function of the
// input string: a Calculator may be shared by any number of goroutines.
package calc

import (
	"github.com/DjordjeVuckovic/calc-hunter/internal/token"
)

// Result is the outcome of a successful evaluation.
type Result struct {
	Value   float64
	Postfix []token.Token
}

// RPN renders the postfix form, e.g. "3 4 2 * +".
func (r *Result) RPN() string {
	return token.FormatPostfix(r.Postfix)
}

type Calculator struct {
	tokenizer token.Tokenizer
	evaluator *Evaluator
}

type Option func(*Calculator)

// WithTokenizer replaces the default shunting-yard tokenizer.
func WithTokenizer(t token.Tokenizer) Option {
	return func(c *Calculator) {
		c.tokenizer = t
	}
}

func New(opts ...Option) *Calculator {
	c := &Calculator{
		tokenizer: token.NewPostfixTokenizer(),
		evaluator: NewEvaluator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Evaluate returns the value of expression, or an *apperr.SyntaxError,
// *apperr.ParseError or *apperr.EvalError.
func (c *Calculator) Evaluate(expression string) (float64, error) {
	res, err := c.EvaluateDetailed(expression)
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}

// EvaluateDetailed is Evaluate that also returns the postfix tokens.
func (c *Calculator) EvaluateDetailed(expression string) (*Result, error) {
	postfix, err := c.tokenizer.Tokenize(expression)
	if err != nil {
		return nil, err
	}

	v, err := c.evaluator.Eval(postfix)
	if err != nil {
		return nil, err
	}

	return &Result{Value: v, Postfix: postfix}, nil
}

var defaultCalculator = New()

// Evaluate evaluates expression with the default Calculator.
func Evaluate(expression string) (float64, error) {
	return defaultCalculator.Evaluate(expression)
}
