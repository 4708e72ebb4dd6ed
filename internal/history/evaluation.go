package history

import (
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
	"github.com/google/uuid"
)

// Evaluation is one served evaluation, successful or not.
type Evaluation struct {
	ID         uuid.UUID     `json:"id"`
	Expression string        `json:"expression"`
	Postfix    string        `json:"postfix,omitempty"`
	Result     *float64      `json:"result,omitempty"`
	Error      string        `json:"error,omitempty"`
	ErrorCode  string        `json:"error_code,omitempty"`
	Duration   time.Duration `json:"duration_ns"`
	CreatedAt  time.Time     `json:"created_at"`
}

// NewEvaluation builds a record from a calculator outcome. Exactly one of res and err is expected to be non-nil.
func NewEvaluation(expression string, res *calc.Result, err error, took time.Duration) Evaluation {
	e := Evaluation{
		ID:         uuid.New(),
		Expression: expression,
		Duration:   took,
		CreatedAt:  time.Now().UTC(),
	}

	if err != nil {
		e.Error = err.Error()
		if xe, ok := apperr.AsExpressionError(err); ok {
			e.ErrorCode = string(xe.ErrorCode())
		}
		return e
	}

	if res != nil {
		v := res.Value
		e.Result = &v
		e.Postfix = res.RPN()
	}
	return e
}

func (e Evaluation) Failed() bool {
	return e.Error != ""
}
