package config

import (
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type AppConfig struct {
	// Server
	HTTPAddr    string
	Env         string
	CORSOrigins []string

	// PostgreSQL
	DB DBConfig

	// Redis (rate limiting is disabled when RedisAddr is empty)
	RedisAddr string
	RedisPass string

	RateLimitRequests int64
	RateLimitWindow   time.Duration
}

type DBConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
	MaxConns int32
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:    ":" + getEnv("PORT", "5000"),
		Env:         getEnv("ENV", "development"),
		CORSOrigins: getEnvSlice("CORS_ORIGINS", []string{"*"}),

		DB: DBConfig{
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "customers"),
			MaxConns: int32(getEnvAsInt("DB_MAX_CONNS", 10)),
		},

		RedisAddr: getEnv("REDIS_ADDR", ""),
		RedisPass: getEnv("REDIS_PASS", ""),

		RateLimitRequests: int64(getEnvAsInt("RATE_LIMIT_REQUESTS", 120)),
		RateLimitWindow:   getEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

// DSN returns the PostgreSQL connection URL understood by both pgx and lib/pq.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// RateLimitEnabled reports whether a Redis address was configured.
func (c AppConfig) RateLimitEnabled() bool {
	return c.RedisAddr != ""
}

// IsDevelopment returns true if running in development mode
func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
