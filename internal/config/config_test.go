package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, "ssp_applications", cfg.StorageKey)
	assert.Equal(t, "admin@ssp.com", cfg.AdminEmail)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("ALLOW_ORIGIN", "https://a.example, https://b.example")

	cfg := Load()
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, BackendRedis, cfg.StorageBackend)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowOrigins)
}

func TestValidate_UnknownBackend(t *testing.T) {
	cfg := Load()
	cfg.StorageBackend = "cassandra"
	assert.Error(t, cfg.Validate())
}

func TestValidate_PostgresNeedsDSN(t *testing.T) {
	cfg := Load()
	cfg.StorageBackend = BackendPostgres
	cfg.PostgresDSN = ""
	assert.Error(t, cfg.Validate())

	cfg.PostgresDSN = "host=localhost user=portal dbname=portal"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_PortRange(t *testing.T) {
	cfg := Load()
	cfg.Port = 0
	assert.Error(t, cfg.Validate())
}

func TestLoad_BadIntFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	assert.Equal(t, 8080, Load().Port)
}
