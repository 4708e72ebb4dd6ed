package engine

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/calc-hunter/internal/client"
)

const APIEngineName = "api"

// APIExecutor evaluates through a running calc API.
type APIExecutor struct {
	client *client.Client
}

func NewAPIExecutor(baseURL string) (*APIExecutor, error) {
	c, err := client.New(baseURL)
	if err != nil {
		return nil, fmt.Errorf("api executor: %w", err)
	}
	return &APIExecutor{client: c}, nil
}

func (e *APIExecutor) Execute(ctx context.Context, expression string) (*Execution, error) {
	resp, err := e.client.Evaluate(ctx, expression, true)
	if err != nil {
		return nil, err
	}
	return &Execution{Value: resp.Res, Postfix: resp.RPN}, nil
}

func (e *APIExecutor) Name() string { return APIEngineName }

func (e *APIExecutor) Close() error { return nil }
