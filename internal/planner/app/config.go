package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TokenSecret string        // Required in prod: HMAC secret for bearer tokens
	Issuer      string        // Issuer claim for bearer tokens (default: playroom-planner)
	TokenTTL    time.Duration // Bearer token lifetime (default: 12h)

	DatabaseFile         string        // Path to the SQLite database file (default: ./planner.db)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Stale-invite sweep interval (default: 1h)
	InviteRetention      time.Duration // How long unanswered invites of past reservations are kept (default: 30 days)
}

// LoadConfig reads configuration from the environment, after loading a local
// .env file when present.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		TokenSecret:          os.Getenv("PLANNER_TOKEN_SECRET"),
		Issuer:               getEnvOrDefault("PLANNER_ISSUER", "playroom-planner"),
		TokenTTL:             getEnvDurationOrDefault("PLANNER_TOKEN_TTL", 12*time.Hour),
		DatabaseFile:         getEnvOrDefault("PLANNER_DATABASE_FILE", "planner.db"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
		InviteRetention:      getEnvDurationOrDefault("INVITE_RETENTION", 30*24*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
