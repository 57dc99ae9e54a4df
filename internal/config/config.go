// Package config reads the portal configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"github.com/kirubhashini2006-coder/internship-portal/internal/utilities"
)

// Storage backend selectors.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config is the resolved runtime configuration.
type Config struct {
	Port        int
	Environment string

	// AllowOrigins is the comma separated CORS allow list.
	AllowOrigins []string

	// StorageBackend is one of memory, redis or postgres.
	StorageBackend string
	StorageKey     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PostgresDSN string

	AdminEmail    string
	AdminPassword string
	AccessKey     string

	MaxUploadBytes int64
}

// Load resolves the configuration from environment variables, applying the
// defaults a development setup expects.
func Load() Config {
	cfg := Config{
		Port:           envInt("PORT", 8080),
		Environment:    envString("APP_ENV", "development"),
		AllowOrigins:   splitList(envString("ALLOW_ORIGIN", "*")),
		StorageBackend: envString("STORAGE_BACKEND", BackendMemory),
		StorageKey:     envString("STORAGE_KEY", "ssp_applications"),
		RedisAddr:      envString("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        envInt("REDIS_DB", 0),
		PostgresDSN:    os.Getenv("POSTGRES_DSN"),
		AdminEmail:     envString("ADMIN_EMAIL", "admin@ssp.com"),
		AdminPassword:  envString("ADMIN_PASSWORD", "admin123"),
		AccessKey:      os.Getenv("ACCESS_KEY"),
		MaxUploadBytes: int64(envInt("MAX_UPLOAD_BYTES", 10<<20)),
	}
	return cfg
}

// Validate rejects combinations that cannot start a server.
func (c Config) Validate() error {
	if !utilities.Contains([]string{BackendMemory, BackendRedis, BackendPostgres}, c.StorageBackend) {
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.StorageBackend == BackendPostgres && c.PostgresDSN == "" {
		return fmt.Errorf("POSTGRES_DSN is required when STORAGE_BACKEND=%s", BackendPostgres)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT %d out of range", c.Port)
	}
	return nil
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
