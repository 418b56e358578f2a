// Package environment provides utilities for managing environment variables
// and configuration loading with support for prefixing and defaults.
package environment

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from a .env file in the working
// directory. Typically called once at application startup; a missing file
// is not fatal and callers usually log and continue.
func LoadEnv() error {
	return godotenv.Load()
}

// LoadPath loads environment variables from the .env file at p, falling
// back to the working directory when p is empty.
func LoadPath(p string) error {
	if p != "" {
		return godotenv.Load(p)
	}
	return godotenv.Load()
}

// GetEnvOrDefault retrieves an environment variable value, returning the
// fallback if the variable is not set.
func GetEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvKeyPrefix joins a prefix and key with an underscore. An empty
// prefix returns the key unchanged.
func GetEnvKeyPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return fmt.Sprintf("%s_%s", prefix, key)
}

// GetPrefixEnvOrDefault retrieves a prefixed environment variable value,
// returning the fallback if the variable is not set.
func GetPrefixEnvOrDefault(prefix, key, fallback string) string {
	return GetEnvOrDefault(GetEnvKeyPrefix(prefix, key), fallback)
}

// GetPrefixEnv retrieves the value of a prefixed environment variable,
// returning an empty string if unset.
func GetPrefixEnv(prefix, key string) string {
	return os.Getenv(GetEnvKeyPrefix(prefix, key))
}
