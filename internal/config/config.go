package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
)

// RouletteConfig holds all configuration for the roulette table
type RouletteConfig struct {
	Table    TableConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Log      LogConfig
	RepoType string `env:"ROULETTE_REPO_TYPE" envDefault:"memory" validate:"oneof=memory redis"`
}

// LoadRouletteConfig loads configuration from the environment
func LoadRouletteConfig() (*RouletteConfig, error) {
	cfg := &RouletteConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
