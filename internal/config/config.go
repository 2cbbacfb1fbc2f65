package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything read from the environment at startup.
// JWT_SECRET is the one key not surfaced here: the auth middleware
// reads it directly when signing and verifying tokens.
type Config struct {
	AppAddr       string
	GinMode       string
	LogFile       string
	AdminName     string
	AdminEmail    string
	AdminPassword string
}

// Load reads .env (if present) and assembles the runtime configuration
// with sensible defaults for local development.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return Config{
		AppAddr:       getEnv("APP_ADDR", ":8080"),
		GinMode:       getEnv("GIN_MODE", ""),
		LogFile:       getEnv("LOG_FILE", "./logs/app.log"),
		AdminName:     getEnv("ADMIN_NAME", "Dispatcher"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@transconnect.ph"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
