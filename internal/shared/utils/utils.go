package utils

import "os"

// GetEnvVariable lấy environment variable với fallback default value
func GetEnvVariable(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
