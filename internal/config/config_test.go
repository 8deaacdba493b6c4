package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := load(envMap(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.ExtractModel)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Empty(t, cfg.ShippoToken)
	assert.Empty(t, cfg.DBURL)
	assert.Empty(t, cfg.RabbitMQURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := load(envMap(map[string]string{
		"PORT":             "9090",
		"GEMINI_API_KEY":   "g-key",
		"EXTRACT_MODEL":    "gemini-2.5-pro",
		"SHIPPO_BASE_URL":  "http://localhost:9999",
		"SHIPPO_API_TOKEN": "shippo_test_abc",
		"DB_URL":           "postgres://localhost/rates",
		"RABBITMQ_URL":     "amqp://localhost",
		"HTTP_TIMEOUT":     "5s",
		"LOG_LEVEL":        "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "g-key", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.ExtractModel)
	assert.Equal(t, "http://localhost:9999", cfg.ShippoBaseURL)
	assert.Equal(t, "shippo_test_abc", cfg.ShippoToken)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad timeout", map[string]string{"HTTP_TIMEOUT": "soon"}, "HTTP_TIMEOUT"},
		{"negative timeout", map[string]string{"HTTP_TIMEOUT": "-1s"}, "must not be negative"},
		{"bad log level", map[string]string{"LOG_LEVEL": "loud"}, "LOG_LEVEL"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := load(envMap(tc.env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
