package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	clearEnv := func() {
		os.Unsetenv("PORT")
		os.Unsetenv("DATABASE_DSN")
		os.Unsetenv("LOG_FORMAT")
		os.Unsetenv("LOG_LEVEL")
	}

	t.Run("missing DATABASE_DSN returns error", func(t *testing.T) {
		clearEnv()

		_, err := Load()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDatabaseDSNRequired)
	})

	t.Run("defaults", func(t *testing.T) {
		clearEnv()
		t.Setenv("DATABASE_DSN", "host=localhost dbname=openings")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("custom values", func(t *testing.T) {
		clearEnv()
		t.Setenv("DATABASE_DSN", "host=db dbname=openings")
		t.Setenv("PORT", "3000")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, "host=db dbname=openings", cfg.DatabaseDSN)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}
