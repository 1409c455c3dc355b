package config

import "os"

// GetEnv reads an environment variable; missing keys come back empty and the
// caller decides whether a default applies or startup should fail.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOr reads an environment variable with a fallback default.
func GetEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
