package engine

import (
	"context"
)

// Executor evaluates a single expression on one backend.
type Executor interface {
	Execute(ctx context.Context, expression string) (*Execution, error)
	Name() string
	Close() error
}

type Execution struct {
	Value   float64
	Postfix string
}
