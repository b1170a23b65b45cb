package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds tool configuration loaded from the environment. The engine
// itself carries no configuration surface; these knobs belong to the CLI and
// embedding processes.
type Config struct {
	AppEnv              string
	LogLevel            string
	LogFormat           string
	MetricsNamespace    string
	DefaultSelectionQty int
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:              valueOrDefault(k.String("APP_ENV"), "development"),
		LogLevel:            valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat:           valueOrDefault(k.String("LOG_FORMAT"), "console"),
		MetricsNamespace:    valueOrDefault(k.String("METRICS_NAMESPACE"), "storefront"),
		DefaultSelectionQty: parseInt(k.String("DEFAULT_SELECTION_QTY"), 1),
	}

	if cfg.DefaultSelectionQty < 1 {
		cfg.DefaultSelectionQty = 1
	}

	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseInt(value string, fallback int) int {
	base := strings.TrimSpace(value)
	if base == "" {
		return fallback
	}
	n, err := strconv.Atoi(base)
	if err != nil {
		return fallback
	}
	return n
}
