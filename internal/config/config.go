package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultModel          = "models/gemini-1.5-flash"
	DefaultFrontendOrigin = "http://localhost:5173"
	DefaultPort           = "8000"
)

var ErrMissingAPIKey = errors.New("GENAI_API_KEY is not set in .env or environment variables")

type Settings struct {
	APIKey         string
	Model          string
	FrontendOrigin string
	Port           string
	LogLevel       string
	LogFormat      string
}

// Load reads settings from the environment, after merging an optional .env file.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	s := &Settings{
		APIKey:         os.Getenv("GENAI_API_KEY"),
		Model:          getEnv("GENAI_MODEL", DefaultModel),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", DefaultFrontendOrigin),
		Port:           getEnv("PORT", DefaultPort),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}
	if s.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return s, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
