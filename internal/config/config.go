package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// app config, loaded once at startup
type Config struct {
	Port              string
	MongoURI          string
	DBName            string
	Provider          string
	PromptStyle       string // "json" or "sections"
	AllowedOrigins    []string
	RedisAddr         string // empty disables rate limiting
	RateLimit         int
	RateLimitWindow   time.Duration
}

// loads configuration from environment variables (and .env when present)
func LoadConfig() (*Config, error) {
	// .env is a local-dev convenience; absence is not an error
	_ = godotenv.Load()

	config := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		MongoURI:        os.Getenv("MONGODB_URI"),
		DBName:          getEnvOrDefault("MONGODB_DB", "faad-do-dsa"),
		Provider:        getEnvOrDefault("AI_PROVIDER", "gemini"),
		PromptStyle:     getEnvOrDefault("ANALYZE_PROMPT_STYLE", "json"),
		AllowedOrigins:  splitList(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RateLimit:       getEnvInt("RATE_LIMIT", 10),
		RateLimitWindow: time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
	}
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.MongoURI == "" {
		return errors.New("MONGODB_URI environment variable is required")
	}
	if config.Provider != "gemini" {
		return errors.New("unsupported AI provider: " + config.Provider + ". Currently supported: gemini")
	}
	if config.PromptStyle != "json" && config.PromptStyle != "sections" {
		return errors.New("ANALYZE_PROMPT_STYLE must be json or sections")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
