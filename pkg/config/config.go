package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the process configuration, loaded from the environment.
type Config struct {
	Port        string
	Env         string
	MongoURI    string
	DBName      string
	JWTSecret   string
	CORSOrigins []string
}

// Load reads configuration from a .env file (if present) and the
// environment, applying development defaults.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:      getEnv("DB_NAME", "studentvoice"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
