package engine

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/DjordjeVuckovic/calc-hunter/internal/api/router"
	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) string {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	router.NewCalcRouter(e, calc.New()).Bind()
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestCreate(t *testing.T) {
	t.Run("local only", func(t *testing.T) {
		executors, cleanup, err := Create(context.Background(), "")
		require.NoError(t, err)
		defer cleanup()

		require.Len(t, executors, 1)
		assert.Equal(t, LocalEngineName, executors[0].Name())
	})

	t.Run("local and api", func(t *testing.T) {
		executors, cleanup, err := Create(context.Background(), newAPI(t))
		require.NoError(t, err)
		defer cleanup()

		require.Len(t, executors, 2)
		assert.Equal(t, APIEngineName, executors[1].Name())
	})

	t.Run("unreachable api", func(t *testing.T) {
		srv := httptest.NewServer(echo.New())
		url := srv.URL
		srv.Close()

		_, _, err := Create(context.Background(), url)
		assert.ErrorContains(t, err, "unreachable")
	})
}

func TestExecutors_Agree(t *testing.T) {
	local := NewLocalExecutor(calc.New())
	api, err := NewAPIExecutor(newAPI(t))
	require.NoError(t, err)

	for _, expr := range []string{"3 + 4 * 2", "(1 + 2) * (3 + 4) / 7", "8 / 4 / 2"} {
		t.Run(expr, func(t *testing.T) {
			want, err := local.Execute(context.Background(), expr)
			require.NoError(t, err)
			got, err := api.Execute(context.Background(), expr)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err = api.Execute(context.Background(), "1 / 0")
	assert.ErrorIs(t, err, apperr.ErrDivisionByZero)
	_, err = local.Execute(context.Background(), "1 / 0")
	assert.ErrorIs(t, err, apperr.ErrDivisionByZero)
}
