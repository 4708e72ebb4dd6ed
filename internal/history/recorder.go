package history

import (
	"context"

	"github.com/google/uuid"
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 200
)

// Recorder persists evaluations and lists the most recent ones.
type Recorder interface {
	Save(ctx context.Context, e Evaluation) (uuid.UUID, error)
	// Recent returns up to limit evaluations, newest first.
	Recent(ctx context.Context, limit int) ([]Evaluation, error)
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
	None  Type = "none"
)

type RecorderError string

const (
	ErrUnsupportedRecorder RecorderError = "unsupported history type: %s"
)

func (e RecorderError) Error() string {
	return string(e)
}

// NopRecorder drops every evaluation.
type NopRecorder struct{}

func NewNopRecorder() *NopRecorder {
	return &NopRecorder{}
}

func (NopRecorder) Save(_ context.Context, e Evaluation) (uuid.UUID, error) {
	return e.ID, nil
}

func (NopRecorder) Recent(context.Context, int) ([]Evaluation, error) {
	return []Evaluation{}, nil
}

// ClampLimit maps a requested limit into [1, MaxRecentLimit], using DefaultRecentLimit for non-positive values.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecentLimit
	}
	return min(limit, MaxRecentLimit)
}
