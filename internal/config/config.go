package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	HTTPPort     string
	AppMode      string
	FiberPrefork bool

	ClickHouseAddr         string
	ClickHouseDatabase     string
	ClickHouseUsername     string
	ClickHousePassword     string
	ClickHouseDialTimeout  time.Duration
	ClickHouseMaxOpenConns int
	ClickHouseMaxIdleConns int

	// RedisAddr enables the insights response cache when non-empty.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// AssumedOrderValue is the fixed average-order-value divisor used by the
	// campaign conversion-rate estimate.
	AssumedOrderValue float64
}

// Load reads configuration from environment variables with sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPPort:               getEnv("HTTP_PORT", ":8080"),
		AppMode:                strings.ToLower(getEnv("APP_MODE", "dev")),
		FiberPrefork:           parseBoolEnv("FIBER_PREFORK", false),
		ClickHouseDatabase:     getEnv("CLICKHOUSE_DATABASE", "default"),
		ClickHouseUsername:     getEnv("CLICKHOUSE_USERNAME", "default"),
		ClickHousePassword:     os.Getenv("CLICKHOUSE_PASSWORD"),
		ClickHouseDialTimeout:  parseDurationEnv("CLICKHOUSE_DIAL_TIMEOUT", 10*time.Second),
		ClickHouseMaxOpenConns: parseIntEnv("CLICKHOUSE_MAX_OPEN_CONNS", 10),
		ClickHouseMaxIdleConns: parseIntEnv("CLICKHOUSE_MAX_IDLE_CONNS", 5),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		RedisPassword:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:                parseIntEnv("REDIS_DB", 0),
		CacheTTL:               parseDurationEnv("CACHE_TTL", 5*time.Minute),
		AssumedOrderValue:      parseFloatEnv("ANALYTICS_ASSUMED_ORDER_VALUE", 1000),
	}
	cfg.ClickHouseAddr = os.Getenv("CLICKHOUSE_ADDR")
	if cfg.ClickHouseAddr == "" {
		return nil, fmt.Errorf("CLICKHOUSE_ADDR is required")
	}
	if cfg.AssumedOrderValue <= 0 {
		return nil, fmt.Errorf("ANALYTICS_ASSUMED_ORDER_VALUE must be positive")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseBoolEnv(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseIntEnv(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseFloatEnv(key string, fallback float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseDurationEnv(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return parsed
}
