package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticHealthChecker bool

func (h staticHealthChecker) Healthy(context.Context) bool { return bool(h) }

func testConfig() *Config {
	return &Config{
		Port:                DefaultPort,
		CorsOrigins:         []string{"*"},
		BodyLimit:           "1K",
		MaxExpressionLength: DefaultMaxExpressionLength,
	}
}

func TestServer_HealthCheck(t *testing.T) {
	tests := []struct {
		name    string
		healthy bool
		status  int
		body    string
	}{
		{name: "healthy", healthy: true, status: http.StatusOK, body: `{"status":"ok"}`},
		{name: "unhealthy", healthy: false, status: http.StatusServiceUnavailable, body: `{"status":"unhealthy"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testConfig(), staticHealthChecker(tt.healthy)).
				SetupMiddlewares().
				SetupErrorHandler().
				SetupHealthChecks("/health")

			rec := httptest.NewRecorder()
			s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
		})
	}
}

func TestServer_HealthChecksSkipRequestLog(t *testing.T) {
	s := New(testConfig(), nil).SetupMiddlewares()

	isHealth := func(path string) bool {
		c := s.Echo.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
		c.SetPath(path)
		return s.isHealthCheck(c)
	}

	assert.False(t, isHealth("/health"), "no health route registered yet")

	s.SetupHealthChecks("/health")
	assert.True(t, isHealth("/health"))
	assert.False(t, isHealth("/eval"))
}

func TestServer_Config(t *testing.T) {
	cfg := testConfig()
	assert.Same(t, cfg, New(cfg, nil).Config())
}

func TestServer_NotFoundUsesErrorEnvelope(t *testing.T) {
	s := New(testConfig(), nil).SetupErrorHandler()

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestServer_ShutdownSignal(t *testing.T) {
	s := New(testConfig(), nil)

	select {
	case <-s.ShutdownSignal():
		t.Fatal("shutdown signal closed before shutdown")
	default:
	}

	s.beginShutdown()
	s.beginShutdown()

	<-s.ShutdownSignal()
	assert.Error(t, s.Context().Err())
}
