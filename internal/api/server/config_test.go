package server

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "none.env"))
	for _, k := range []string{"PORT", "USE_HTTP2", "CORS_ORIGINS", "BODY_LIMIT", "MAX_EXPRESSION_LENGTH"} {
		t.Setenv(k, "")
	}
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setEnv(t, nil)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.False(t, cfg.UseHttp2)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
	assert.Equal(t, DefaultBodyLimit, cfg.BodyLimit)
	assert.Equal(t, DefaultMaxExpressionLength, cfg.MaxExpressionLength)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	setEnv(t, map[string]string{
		"PORT":                  "9000",
		"USE_HTTP2":             "true",
		"CORS_ORIGINS":          " http://a.test, ,http://b.test ",
		"BODY_LIMIT":            "1K",
		"MAX_EXPRESSION_LENGTH": "64",
	})

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.UseHttp2)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CorsOrigins)
	assert.Equal(t, "1K", cfg.BodyLimit)
	assert.Equal(t, 64, cfg.MaxExpressionLength)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"port not a number":  {"PORT": "http"},
		"port out of range":  {"PORT": "70000"},
		"zero max length":    {"MAX_EXPRESSION_LENGTH": "0"},
		"garbage max length": {"MAX_EXPRESSION_LENGTH": "lots"},
	}

	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			setEnv(t, kv)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
