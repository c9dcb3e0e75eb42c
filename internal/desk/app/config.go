package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	SessionSecret     string // Required: HMAC secret shared with the session issuer
	SessionCookieName string // Optional: session cookie name (default: desk_session)
	SessionIssuer     string // Optional: expected iss claim; empty disables the check

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./desk.db)
	InvitationTTL        time.Duration // Optional: how long invitations stay redeemable (default: 7 days)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

func LoadConfig() Config {
	return Config{
		SessionSecret:        os.Getenv("DESK_SESSION_SECRET"),
		SessionCookieName:    getEnvOrDefault("DESK_SESSION_COOKIE", "desk_session"),
		SessionIssuer:        os.Getenv("DESK_SESSION_ISSUER"),
		DatabaseFile:         getEnvOrDefault("DESK_DATABASE_FILE", "desk.db"),
		InvitationTTL:        getEnvDurationOrDefault("DESK_INVITATION_TTL", 7*24*time.Hour),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
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

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
