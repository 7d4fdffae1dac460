package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// getRequiredEnv is a helper func to get a required variable or fatal log on error.
func getRequiredEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		log.Fatalf("FATAL: Required environment variable %q is not set", key)
	}
	return val
}

// getOptionalEnv is a helper func to get an optional variable with a default value.
func getOptionalEnv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	return val
}

// parseInt is a helper func to parse an integer variable.
func parseInt(key string, defaultValue int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Fatalf("FATAL: Invalid integer value for %q: %v", key, err)
	}
	return val
}

// parseDuration is a helper func to parse a duration variable (e.g., "15m", "1h").
func parseDuration(key, defaultValue string) time.Duration {
	valStr := getOptionalEnv(key, defaultValue)
	val, err := time.ParseDuration(valStr)
	if err != nil {
		log.Fatalf("FATAL: Invalid duration value for %q (e.g. '15m'): %v", key, err)
	}
	return val
}

// parseList is a helper func to parse a comma-separated list variable.
func parseList(key, defaultValue string) []string {
	valStr := getOptionalEnv(key, defaultValue)

	parts := strings.Split(valStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
