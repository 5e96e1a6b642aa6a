package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string
	AppEnv  string

	JWTKey     []byte
	SessionTTL time.Duration

	DBPath string
}

// Load reads .env (when present) and the environment and returns the
// resulting configuration. The struct is passed down explicitly; nothing
// here is kept as package state.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return &Config{
		AppPort:    getEnv("APP_PORT", "8080"),
		AppEnv:     getEnv("APP_ENV", "production"),
		JWTKey:     []byte(getEnv("SESSION_SECRET", "dev_secret")),
		SessionTTL: time.Duration(getEnvAsInt("SESSION_TTL_HOURS", 72)) * time.Hour,
		DBPath:     getEnv("DB_PATH", "bus_safety.db"),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
