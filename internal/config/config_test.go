package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverFile, cfg.StorageDriver)
	assert.Equal(t, "media.json", cfg.DataFile)
	assert.False(t, cfg.Seed)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_FILE", "/tmp/catalog.json")
	t.Setenv("SEED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/catalog.json", cfg.DataFile)
	assert.True(t, cfg.Seed)
}

func TestLoadPostgresRequiresDSN(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", DriverPostgres)

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost/media")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.StorageDriver)
}

func TestLoadUnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "cassette-tape")

	_, err := Load()
	assert.Error(t, err)
}
