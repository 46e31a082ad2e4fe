// Package pagination provides offset-based pagination shared by the HTTP
// handlers and the query usecases.
package pagination

import (
	"os"
	"strconv"
)

// Config holds pagination configuration settings.
type Config struct {
	DefaultPage    int // Default page number (typically 1)
	DefaultPerPage int // Default items per page
	MaxPerPage     int // Maximum allowed items per page
}

// DefaultConfig returns the default pagination configuration:
// page=1, per_page=10, max=50.
func DefaultConfig() Config {
	return Config{
		DefaultPage:    1,
		DefaultPerPage: 10,
		MaxPerPage:     50,
	}
}

// LoadFromEnv loads pagination config from environment variables,
// falling back to DefaultConfig values when unset or unparsable.
//
// Supported variables: PAGINATION_DEFAULT_PAGE, PAGINATION_DEFAULT_PER_PAGE,
// PAGINATION_MAX_PER_PAGE.
func LoadFromEnv() Config {
	return Config{
		DefaultPage:    getEnvAsInt("PAGINATION_DEFAULT_PAGE", 1),
		DefaultPerPage: getEnvAsInt("PAGINATION_DEFAULT_PER_PAGE", 10),
		MaxPerPage:     getEnvAsInt("PAGINATION_MAX_PER_PAGE", 50),
	}
}

func getEnvAsInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultValue
	}
	return val
}
