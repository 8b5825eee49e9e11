package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string
	Database DatabaseConfig
	Session  SessionConfig
}

type DatabaseConfig struct {
	URL string
}

type SessionConfig struct {
	Name   string
	Secret string
	Secure bool
}

func Load() (*Config, error) {
	godotenv.Load()

	return &Config{
		Port:     getEnv("PORT", "3000"),
		GinMode:  getEnv("GIN_MODE", "debug"),
		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Session: SessionConfig{
			Name:   getEnv("SESSION_NAME", "farmstand_session"),
			Secret: getEnv("SESSION_SECRET", "farmstand-dev-secret"),
			Secure: getEnv("SESSION_SECURE", "false") == "true",
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
