package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	t.Run("loads file from ENV_PATH", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("CALC_TEST_PORT=9090\n"), 0o644))

		t.Setenv("ENV_PATH", path)
		t.Setenv("CALC_TEST_PORT", "")
		require.NoError(t, os.Unsetenv("CALC_TEST_PORT"))

		require.NoError(t, LoadDotEnv("local", "does-not-matter"))
		assert.Equal(t, "9090", os.Getenv("CALC_TEST_PORT"))
	})

	t.Run("missing file fails in local mode", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")
		err := LoadDotEnv("local", filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})

	t.Run("missing file is skipped outside local mode", func(t *testing.T) {
		t.Setenv("ENV_PATH", "")
		err := LoadDotEnv("production", filepath.Join(t.TempDir(), "missing.env"))
		assert.NoError(t, err)
	})
}
