package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/instinctive")
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("CLIENT_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, ":3000", cfg.Address())
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("DATABASE_URL", "/var/lib/instinctive.db")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("CLIENT_URL", "https://dash.example.com")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example.com, ,https://b.example.com")
	t.Setenv("READ_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ":8080", cfg.Address())
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{
		"http://localhost:3000",
		"http://localhost:5173",
		"https://dash.example.com",
		"https://a.example.com",
		"https://b.example.com",
	}, cfg.AllowedOrigins)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "postgres")
		t.Setenv("DATABASE_URL", "")

		_, err := Load()
		assert.ErrorIs(t, err, ErrMissingDatabaseURL)
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "oracle")
		t.Setenv("DATABASE_URL", "x")

		_, err := Load()
		assert.ErrorIs(t, err, ErrUnsupportedDriver)
	})

	t.Run("bad duration", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "sqlite")
		t.Setenv("DATABASE_URL", "x.db")
		t.Setenv("WRITE_TIMEOUT", "soon")

		_, err := Load()
		assert.ErrorContains(t, err, "WRITE_TIMEOUT")
	})
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, LoadEnv(filepath.Join(dir, "missing.env")))

	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("INSTINCTIVE_TEST_VALUE=from-dotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("INSTINCTIVE_TEST_VALUE") })

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "from-dotenv", os.Getenv("INSTINCTIVE_TEST_VALUE"))
}
