package config

import (
	"os"
	"strings"
)

type Config struct {
	DatabaseURL string
	JWTSecret   string
	CORSOrigins []string
	GinMode     string
	Port        string
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "task_manager.db"),
		JWTSecret:   getEnv("JWT_SECRET", "jwt-secret-string"),
		CORSOrigins: splitOrigins(getEnv("FRONTEND_URL", "http://localhost:3000")),
		GinMode:     getEnv("GIN_MODE", "debug"),
		Port:        getEnv("PORT", "5555"),
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
