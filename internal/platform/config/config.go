package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr        string
	DatabaseURL string
	Redis       RedisConfig
	Workers     int64
}

// RedisConfig configures the optional change-event bridge. An empty URL
// disables it.
type RedisConfig struct {
	URL          string
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays
// lean. DATABASE_URL empty means the in-memory stores; REDIS_URL empty means
// single-instance fan-out.
func FromEnv() Server {
	addr := os.Getenv("TICKETD_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	workers := int64(16)
	if raw := os.Getenv("TICKETD_WORKERS"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil && n > 0 {
			workers = n
		}
	}

	return Server{
		Addr:        addr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Workers:     workers,
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
	}
}
