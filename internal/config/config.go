// Package config loads and validates the API server configuration from
// environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64

	// MigrateOnStart applies the embedded goose migrations before serving.
	MigrateOnStart bool

	Providers Providers
}

// Providers holds the credentials and tuning of the outbound search APIs.
// Empty keys are allowed: the matching search endpoint answers 502 instead.
type Providers struct {
	OpenTripMapKey      string
	XoteloBaseURL       string
	AmadeusClientID     string
	AmadeusClientSecret string
	// AmadeusEnv is "test" or "production".
	AmadeusEnv string
	SerpAPIKey string
	// RequestsPerSecond throttles each provider client independently.
	RequestsPerSecond float64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set or any
// value that cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		Providers: Providers{
			OpenTripMapKey:      os.Getenv("OPENTRIPMAP_API_KEY"),
			XoteloBaseURL:       os.Getenv("XOTELO_BASE_URL"),
			AmadeusClientID:     os.Getenv("AMADEUS_CLIENT_ID"),
			AmadeusClientSecret: os.Getenv("AMADEUS_CLIENT_SECRET"),
			AmadeusEnv:          getEnv("AMADEUS_ENV", "test"),
			SerpAPIKey:          os.Getenv("SERP_API_KEY"),
		},
	}

	var missing, invalid []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		invalid = append(invalid, "LOG_LEVEL")
	}

	if cfg.Providers.AmadeusEnv != "test" && cfg.Providers.AmadeusEnv != "production" {
		invalid = append(invalid, "AMADEUS_ENV")
	}

	var err error
	if cfg.MaxBodyBytes, err = strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64); err != nil {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	if cfg.MigrateOnStart, err = strconv.ParseBool(getEnv("MIGRATE_ON_START", "false")); err != nil {
		invalid = append(invalid, "MIGRATE_ON_START")
	}
	if cfg.Providers.RequestsPerSecond, err = strconv.ParseFloat(getEnv("PROVIDER_RPS", "5"), 64); err != nil || cfg.Providers.RequestsPerSecond < 0 {
		invalid = append(invalid, "PROVIDER_RPS")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
