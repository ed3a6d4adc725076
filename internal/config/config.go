// Package config provides environment configuration for the listings server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the environment-derived server configuration. The credential
// fields may be empty at startup; they are checked when first used so the
// server can boot and report the missing credential per request.
type Config struct {
	Port              int    // HTTP listen port (PORT)
	GoogleAPIKey      string // Custom Search API key (GOOGLE_API_KEY)
	GoogleCX          string // Custom Search engine ID (GOOGLE_CX)
	SheetsCredentials string // Service-account JSON payload (GOOGLE_SHEETS_CREDENTIALS)
}

// DefaultPort is used when PORT is unset.
const DefaultPort = 3000

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		Port:              getEnvInt("PORT", DefaultPort),
		GoogleAPIKey:      getEnvString("GOOGLE_API_KEY", ""),
		GoogleCX:          getEnvString("GOOGLE_CX", ""),
		SheetsCredentials: getEnvString("GOOGLE_SHEETS_CREDENTIALS", ""),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	return nil
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
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
