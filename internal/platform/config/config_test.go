package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("TICKETD_ADDR", "")
	t.Setenv("TICKETD_WORKERS", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")

	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, int64(16), cfg.Workers)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.Redis.URL)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("TICKETD_ADDR", ":9999")
	t.Setenv("TICKETD_WORKERS", "4")
	t.Setenv("DATABASE_URL", "postgres://localhost/ticketd")
	t.Setenv("REDIS_URL", "redis://localhost:6379")

	cfg := FromEnv()
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, int64(4), cfg.Workers)
	assert.Equal(t, "postgres://localhost/ticketd", cfg.DatabaseURL)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.URL)
}

func TestFromEnvRejectsBadWorkerCounts(t *testing.T) {
	for _, raw := range []string{"0", "-3", "lots"} {
		t.Setenv("TICKETD_WORKERS", raw)
		assert.Equal(t, int64(16), FromEnv().Workers, raw)
	}
}
