package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	JWTSecret string // Required: shared HS256 signing secret
	Issuer    string // Optional: issuer claim for tokens (default: odonlab-cms)

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./cms.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads configuration from the environment, with a .env file as
// an optional local override source.
func LoadConfig() Config {
	// Missing .env is fine, real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := Config{
		JWTSecret:           os.Getenv("CMS_JWT_SECRET"),
		Issuer:              getEnvOrDefault("CMS_ISSUER", "odonlab-cms"),
		DatabaseFile:        getEnvOrDefault("CMS_DATABASE_FILE", "cms.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("CMS_PORT", 8000),
		ShutdownGracePeriod: getEnvDurationOrDefault("CMS_SHUTDOWN_GRACE_PERIOD", 10*time.Second),
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
