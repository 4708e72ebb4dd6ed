package engine

import (
	"context"

	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
)

const LocalEngineName = "local"

// LocalExecutor evaluates in-process.
type LocalExecutor struct {
	calculator *calc.Calculator
}

func NewLocalExecutor(calculator *calc.Calculator) *LocalExecutor {
	return &LocalExecutor{calculator: calculator}
}

func (e *LocalExecutor) Execute(_ context.Context, expression string) (*Execution, error) {
	res, err := e.calculator.EvaluateDetailed(expression)
	if err != nil {
		return nil, err
	}
	return &Execution{Value: res.Value, Postfix: res.RPN()}, nil
}

func (e *LocalExecutor) Name() string { return LocalEngineName }

func (e *LocalExecutor) Close() error { return nil }
