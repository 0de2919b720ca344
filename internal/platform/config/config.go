package config

import (
	"os"
	"time"
)

// Server captures process-level configuration.
type Server struct {
	Addr        string
	Variant     string
	LiteMode    bool
	PostgresURL string
	Redis       RedisConfig
}

// RedisConfig configures the optional Redis connection used by the section
// toggle store. An empty URL means Redis is not configured and the in-memory
// store is used instead.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("MISE_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	return Server{
		Addr:        addr,
		Variant:     os.Getenv("MISE_VARIANT"),
		LiteMode:    os.Getenv("MISE_LITE_MODE") == "true",
		PostgresURL: os.Getenv("MISE_POSTGRES_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("MISE_REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
	}
}
