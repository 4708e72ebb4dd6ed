package pg

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	pkgtesting "github.com/DjordjeVuckovic/calc-hunter/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

func newTestPool(t *testing.T) *ConnectionPool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container := pkgtesting.NewPGContainerWithCleanup(ctx, t)

	pool, err := NewConnectionPool(ctx, PoolConfig{ConnStr: container.ConnString})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

func TestRecorder_SaveAndRecent(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()

	recorder, err := NewRecorder(pool)
	require.NoError(t, err)

	c := calc.New()
	base := time.Now().UTC().Truncate(time.Microsecond)

	res, err := c.EvaluateDetailed("3 + 4 * 2")
	require.NoError(t, err)
	ok := history.NewEvaluation("3 + 4 * 2", res, nil, 3*time.Microsecond)
	ok.CreatedAt = base

	_, evalErr := c.EvaluateDetailed("10 / 0")
	failed := history.NewEvaluation("10 / 0", nil, evalErr, time.Microsecond)
	failed.CreatedAt = base.Add(time.Second)

	id, err := recorder.Save(ctx, ok)
	require.NoError(t, err)
	assert.Equal(t, ok.ID, id)

	_, err = recorder.Save(ctx, failed)
	require.NoError(t, err)

	recent, err := recorder.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	assert.Equal(t, failed.ID, recent[0].ID)
	assert.Nil(t, recent[0].Result)
	assert.Equal(t, "division_by_zero", recent[0].ErrorCode)

	assert.Equal(t, ok.ID, recent[1].ID)
	require.NotNil(t, recent[1].Result)
	assert.Equal(t, 11.0, *recent[1].Result)
	assert.Equal(t, "3 4 2 * +", recent[1].Postfix)
	assert.Equal(t, 3*time.Microsecond, recent[1].Duration)

	limited, err := recorder.Recent(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestRecorder_AssignsMissingID(t *testing.T) {
	pool := newTestPool(t)

	recorder, err := NewRecorder(pool)
	require.NoError(t, err)

	id, err := recorder.Save(context.Background(), history.Evaluation{Expression: "1"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestHealthChecker(t *testing.T) {
	assert.False(t, NewHealthChecker(nil).Healthy(context.Background()))

	pool := newTestPool(t)
	assert.True(t, NewHealthChecker(pool).Healthy(context.Background()))
}

func TestNewRecorder_NilPool(t *testing.T) {
	_, err := NewRecorder(nil)
	assert.Error(t, err)
}
