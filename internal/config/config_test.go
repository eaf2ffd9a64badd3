package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("STORE_SEED", "true")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 25*time.Second, cfg.Realtime.PingInterval)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoadConfigFileThenEnvOverride(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte("server:\n  address: \":9090\"\nstore:\n  backend: Postgres\npostgres:\n  dsn: \"host=db\"\njwt:\n  secret: fromfile\n  expiration: 30m\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o644))
	t.Setenv("SERVER_ADDRESS", ":7070")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Address)
	assert.Equal(t, BackendPostgres, cfg.Store.Backend)
	assert.Equal(t, "host=db", cfg.Postgres.DSN)
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiration)
}

func TestValidate(t *testing.T) {
	base := Config{
		Store: StoreConfig{Backend: BackendMemory},
		JWT:   JWTConfig{Secret: "x", Expiration: time.Hour},
	}
	assert.NoError(t, base.Validate())

	noSecret := base
	noSecret.JWT.Secret = ""
	assert.Error(t, noSecret.Validate())

	badBackend := base
	badBackend.Store.Backend = "redis"
	assert.Error(t, badBackend.Validate())

	pg := base
	pg.Store.Backend = BackendPostgres
	assert.Error(t, pg.Validate())
}
