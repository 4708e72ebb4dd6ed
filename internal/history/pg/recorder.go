package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Recorder struct {
	db *pgxpool.Pool
}

func NewRecorder(pool *ConnectionPool) (*Recorder, error) {
	if pool == nil {
		return nil, fmt.Errorf("connection pool is nil")
	}
	return &Recorder{db: pool.conn}, nil
}

func (r *Recorder) Save(ctx context.Context, e history.Evaluation) (uuid.UUID, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	cmd := `
        INSERT INTO evaluations (id, expression, postfix, result, error, error_code, duration_ns, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id;
    `
	var id uuid.UUID
	err := r.db.QueryRow(
		ctx,
		cmd,
		e.ID,
		e.Expression,
		e.Postfix,
		e.Result,
		e.Error,
		e.ErrorCode,
		e.Duration.Nanoseconds(),
		e.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return id, nil
}

func (r *Recorder) Recent(ctx context.Context, limit int) ([]history.Evaluation, error) {
	limit = history.ClampLimit(limit)

	query := `
        SELECT id, expression, postfix, result, error, error_code, duration_ns, created_at
        FROM evaluations
        ORDER BY created_at DESC, id DESC
        LIMIT $1;
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}

	evaluations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (history.Evaluation, error) {
		var (
			e          history.Evaluation
			durationNs int64
		)
		err := row.Scan(&e.ID, &e.Expression, &e.Postfix, &e.Result, &e.Error, &e.ErrorCode, &durationNs, &e.CreatedAt)
		e.Duration = time.Duration(durationNs)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan evaluations: %w", err)
	}

	return evaluations, nil
}
