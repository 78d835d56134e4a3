package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// InsecureFallbackSecret signs tokens when JWT_SECRET is unset. It exists
// so the service comes up in local development without any configuration;
// running with it in production leaves every issued token forgeable.
// main logs a prominent warning whenever it is in use.
const InsecureFallbackSecret = "ThisISMYSectKeyXHaxx1234"

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	DatabaseURL string
	RedisURL    string

	JWTSecret           string
	UsingFallbackSecret bool

	FinishRateLimit time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "3000"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			getEnv("POSTGRES_USER", "postgres"),
			getEnv("POSTGRES_PASSWORD", "postgres"),
			getEnv("POSTGRES_HOST", "localhost"),
			getEnv("POSTGRES_PORT", "5432"),
			getEnv("POSTGRES_DB", "postgres"),
		)
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = InsecureFallbackSecret
		cfg.UsingFallbackSecret = true
	}

	var err error
	cfg.FinishRateLimit, err = time.ParseDuration(getEnv("FINISH_RATE_LIMIT", "2s"))
	if err != nil {
		return nil, fmt.Errorf("invalid FINISH_RATE_LIMIT: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
