package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	Port         string
	DatabaseURL  string
	DatabaseName string

	// Presence of the raw env vars, captured before defaults are applied.
	// Diagnostics reports presence, never values.
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		Port:            getEnvOrDefault("PORT", "8000"),
		DatabaseURL:     getEnvOrDefault("DATABASE_URL", ""),
		DatabaseName:    getEnvOrDefault("DATABASE_NAME", "upcycled_shop"),
		DatabaseURLSet:  strings.TrimSpace(os.Getenv("DATABASE_URL")) != "",
		DatabaseNameSet: strings.TrimSpace(os.Getenv("DATABASE_NAME")) != "",
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
