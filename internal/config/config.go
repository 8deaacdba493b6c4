package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Config holds the service settings read from the environment.
type Config struct {
	Port string

	// GeminiAPIKey is optional; without it address extraction always fails
	// with a config error.
	GeminiAPIKey  string
	GeminiBaseURL string
	ExtractModel  string

	ShippoBaseURL string
	// ShippoToken seeds the rate credential. Empty selects mock mode.
	ShippoToken string

	// DBURL and RabbitMQURL are optional and enable quote history and
	// rates.quoted events respectively.
	DBURL       string
	RabbitMQURL string

	HTTPTimeout time.Duration
	LogLevel    slog.Level
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	orDefault := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:          orDefault("PORT", "8080"),
		GeminiAPIKey:  getenv("GEMINI_API_KEY"),
		GeminiBaseURL: getenv("GEMINI_BASE_URL"),
		ExtractModel:  orDefault("EXTRACT_MODEL", "gemini-2.5-flash"),
		ShippoBaseURL: getenv("SHIPPO_BASE_URL"),
		ShippoToken:   getenv("SHIPPO_API_TOKEN"),
		DBURL:         getenv("DB_URL"),
		RabbitMQURL:   getenv("RABBITMQ_URL"),
	}

	timeout, err := time.ParseDuration(orDefault("HTTP_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("HTTP_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return Config{}, fmt.Errorf("HTTP_TIMEOUT must not be negative, got %s", timeout)
	}
	cfg.HTTPTimeout = timeout

	if err := cfg.LogLevel.UnmarshalText([]byte(orDefault("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return cfg, nil
}
