package helpers

import (
	"os"
)

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func Contains[T comparable](slice []T, item T) bool {
	for _, candidate := range slice {
		if candidate == item {
			return true
		}
	}
	return false
}
