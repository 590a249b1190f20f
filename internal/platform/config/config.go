// Package config builds runtime configuration from environment variables so
// main stays lean. Every knob has a development-safe default; production
// deployments override via the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	JWTSigningKey string
}

// Postgres captures the relational store configuration. An empty DSN means
// the service runs on in-memory stores (development, tests).
type Postgres struct {
	DSN string
}

// Redis captures the effective-attribute cache configuration. An empty URL
// disables the cache.
type Redis struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Kafka captures the lifecycle event sink configuration. Empty brokers
// disable the sink; events still flow to the in-process store.
type Kafka struct {
	Brokers []string
	Topic   string
}

// AutoApproval captures the assessment pipeline knobs.
type AutoApproval struct {
	QueueSize        int
	MaxConcurrent    int64
	MaxAttempts      int
	BaseBackoff      time.Duration
	CallTimeout      time.Duration
	ApproveThreshold int
}

// EffectiveAttrsCacheTTL bounds staleness of cached leg effective attributes.
var EffectiveAttrsCacheTTL = 5 * time.Minute

// Config aggregates all sections.
type Config struct {
	Server       Server
	Postgres     Postgres
	Redis        Redis
	Kafka        Kafka
	AutoApproval AutoApproval
}

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	return Config{
		Server: Server{
			Addr:          envOr("CREWDOCK_ADDR", ":8080"),
			JWTSigningKey: envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		},
		Postgres: Postgres{
			DSN: os.Getenv("POSTGRES_DSN"),
		},
		Redis: Redis{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envIntOr("REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDurationOr("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDurationOr("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDurationOr("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: Kafka{
			Brokers: splitNonEmpty(os.Getenv("KAFKA_BROKERS")),
			Topic:   envOr("KAFKA_EVENTS_TOPIC", "crewdock.registration.events"),
		},
		AutoApproval: AutoApproval{
			QueueSize:        envIntOr("ASSESSMENT_QUEUE_SIZE", 64),
			MaxConcurrent:    int64(envIntOr("ASSESSMENT_MAX_CONCURRENT", 8)),
			MaxAttempts:      envIntOr("ASSESSMENT_MAX_ATTEMPTS", 3),
			BaseBackoff:      envDurationOr("ASSESSMENT_BASE_BACKOFF", 500*time.Millisecond),
			CallTimeout:      envDurationOr("ASSESSMENT_CALL_TIMEOUT", 15*time.Second),
			ApproveThreshold: envIntOr("ASSESSMENT_APPROVE_THRESHOLD", 70),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
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

func envDurationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func splitNonEmpty(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
