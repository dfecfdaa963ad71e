// Package config loads command settings from .env and the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	sqlstore "github.com/donavanyieh/Daily-Attention-UI/internal/storage/sqlite"
)

// Config is shared by every command; each one reads only what it needs.
type Config struct {
	DBPath   string
	LogLevel string

	Redis RedisConfig
	Kafka KafkaConfig
	LLM   LLMConfig
}

// RedisConfig enables the feed cache when Addr is set.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	Prefix   string
}

// KafkaConfig enables seed events when Brokers is non-empty.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

const (
	DefaultCachePrefix = "papers"
	DefaultCacheTTL    = 24 * time.Hour
	DefaultTopic       = "papers.events"
	DefaultLLMModel    = "gpt-4o-mini"
	DefaultLLMTimeout  = 60 * time.Second
)

// Load reads .env (if present) and then the process environment. dbFlag is
// the command's -db value and wins over the environment when set.
func Load(dbFlag string) Config {
	_ = godotenv.Load()
	return FromEnv(dbFlag)
}

// FromEnv builds a Config from the current environment only.
func FromEnv(dbFlag string) Config {
	return Config{
		DBPath:   DBPath(dbFlag),
		LogLevel: envString("LOG_LEVEL", "info"),
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
			TTL:      envDuration("PAPERS_CACHE_TTL", DefaultCacheTTL),
			Prefix:   envString("PAPERS_CACHE_PREFIX", DefaultCachePrefix),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(os.Getenv("KAFKA_BROKERS")),
			Topic:   envString("PAPERS_KAFKA_TOPIC", DefaultTopic),
		},
		LLM: LLMConfig{
			APIKey:  envString("LLM_API_KEY", os.Getenv("OPENAI_API_KEY")),
			BaseURL: os.Getenv("LLM_BASE_URL"),
			Model:   envString("LLM_MODEL", DefaultLLMModel),
			Timeout: envDuration("LLM_TIMEOUT", DefaultLLMTimeout),
		},
	}
}

// DBPath resolves the database file: flag value, then PAPERS_DB_PATH, then
// SQLITE_PATH, then the store default.
func DBPath(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	if v := os.Getenv("PAPERS_DB_PATH"); v != "" {
		return v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		return v
	}
	return sqlstore.DefaultPath
}

func envString(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func envInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return def
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
