package es

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/calc-hunter/internal/history"
	pkgtesting "github.com/DjordjeVuckovic/calc-hunter/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
)

func TestDocument_RoundTrip(t *testing.T) {
	v := 2.5
	e := history.Evaluation{
		ID:         uuid.New(),
		Expression: "5 / 2",
		Postfix:    "5 2 /",
		Result:     &v,
		Duration:   42 * time.Microsecond,
		CreatedAt:  time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	got, err := toDocument(e).toEvaluation()
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestDocument_InvalidID(t *testing.T) {
	_, err := Document{ID: "not-a-uuid"}.toEvaluation()
	assert.Error(t, err)
}

func TestRecorder_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping elasticsearch integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container := pkgtesting.NewESContainer(ctx, t)

	recorder, err := NewRecorder(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "evaluations_test",
	}, WithRefresh())
	require.NoError(t, err)

	require.NoError(t, recorder.EnsureIndex(ctx), "second EnsureIndex must be a no-op")

	base := time.Now().UTC().Truncate(time.Millisecond)
	for i, expr := range []string{"1 + 1", "2 * 3", "(4"} {
		_, err := recorder.Save(ctx, history.Evaluation{
			ID:         uuid.New(),
			Expression: expr,
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	recent, err := recorder.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "(4", recent[0].Expression)
	assert.Equal(t, "2 * 3", recent[1].Expression)
}
