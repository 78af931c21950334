package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey string
	GeminiModel  string

	// CORS
	AllowedOrigin string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port: getEnvOrDefault("PORT", "8000"),
		Env:  getEnvOrDefault("ENV", "development"),
		// An absent key is not fatal: the server starts in offline mode.
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-pro"),
		AllowedOrigin: getEnvOrDefault("ALLOWED_ORIGIN", "*"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
