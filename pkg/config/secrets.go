package config

import (
	"os"
	"strings"
)

// GetSecretOrEnv reads a sensitive value from a Docker secret file or an
// environment variable. Priority: the file named by {NAME}_FILE, then the
// {NAME} env var, then the default.
//
// Example:
//
//	password := GetSecretOrEnv("KAFKA_PASSWORD", "")
func GetSecretOrEnv(name string, defaultValue string) string {
	filePath := os.Getenv(name + "_FILE")
	if filePath != "" {
		if data, err := os.ReadFile(filePath); err == nil {
			return strings.TrimSpace(string(data))
		}
	}

	if value := os.Getenv(name); value != "" {
		return value
	}

	return defaultValue
}

// MustGetSecret reads a sensitive value and panics when it is absent.
func MustGetSecret(name string) string {
	value := GetSecretOrEnv(name, "")
	if value == "" {
		panic("required secret not found: " + name)
	}
	return value
}
