package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

type Config struct {
	Port          int
	DBPath        string
	JWTSecret     string
	TokenTTL      time.Duration
	AdminPassword string
	MailFrom      string
	MailWorkers   int
}

// Load reads configuration from the environment, with .env as a convenience
// overlay for local development.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Info("no .env file found, using environment variables")
	}

	return Config{
		Port:          getEnvInt("PORT", 6060),
		DBPath:        getEnv("DB_PATH", "./database.db"),
		JWTSecret:     getEnv("JWT_SECRET", "insecure-dev-secret"),
		TokenTTL:      time.Duration(getEnvInt("TOKEN_TTL_HOURS", 24)) * time.Hour,
		AdminPassword: getEnv("ADMIN_PASSWORD", "adminpassword"),
		MailFrom:      getEnv("MAIL_FROM", "fablab@example.org"),
		MailWorkers:   getEnvInt("MAIL_WORKERS", 2),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
