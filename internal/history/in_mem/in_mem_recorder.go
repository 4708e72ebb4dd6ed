package in_mem

import (
	"context"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	"github.com/google/uuid"
)

const DefaultCapacity = 1000

// InMemRecorder keeps the last Capacity evaluations in memory.
type InMemRecorder struct {
	storageLock sync.RWMutex
	storage     []history.Evaluation
	capacity    int
}

func NewInMemRecorder(capacity int) *InMemRecorder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &InMemRecorder{
		storage:  make([]history.Evaluation, 0, min(capacity, 64)),
		capacity: capacity,
	}
}

func (s *InMemRecorder) Save(_ context.Context, e history.Evaluation) (uuid.UUID, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if len(s.storage) == s.capacity {
		copy(s.storage, s.storage[1:])
		s.storage = s.storage[:len(s.storage)-1]
	}
	s.storage = append(s.storage, e)

	slog.Debug("Saved evaluation to in-memory history", "id", e.ID, "size", len(s.storage))
	return e.ID, nil
}

func (s *InMemRecorder) Recent(_ context.Context, limit int) ([]history.Evaluation, error) {
	limit = history.ClampLimit(limit)

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	n := min(limit, len(s.storage))
	out := make([]history.Evaluation, 0, n)
	for i := len(s.storage) - 1; i >= len(s.storage)-n; i-- {
		out = append(out, s.storage[i])
	}
	return out, nil
}

func (s *InMemRecorder) Len() int {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()
	return len(s.storage)
}
