package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// EndpointConfig is the rate limit tier for one endpoint.
type EndpointConfig struct {
	Path   string        // exact path, or prefix when ending in "/"
	Method string        // HTTP method
	Limit  int           // requests per window; <= 0 means unlimited
	Window time.Duration // time window
	Burst  int           // burst capacity, defaults to Limit
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Endpoints       []EndpointConfig
}

// LoadConfig reads rate limiting configuration from the environment.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	cfg := defaultConfig()
	cfg.DefaultLimit = getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	return cfg
}

func defaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Endpoints: []EndpointConfig{
			// Every search burns upstream quota; the export endpoints
			// additionally create documents.
			{Path: "/api/search-to-spreadsheet", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
			{Path: "/api/search-to-excel", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
			{Path: "/api/search", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
			{Path: "/google_search", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		},
	}
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
