package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     App
	Server  Server
	Catalog Catalog
	Scoring Scoring
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"deals-bot"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	config := Config{
		Catalog: DefaultCatalog(),
		Scoring: DefaultScoring(),
	}

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Catalog.Validate(); err != nil {
		return Config{}, fmt.Errorf("catalog.Validate: %w", err)
	}

	if err := config.Scoring.Validate(); err != nil {
		return Config{}, fmt.Errorf("scoring.Validate: %w", err)
	}

	return config, nil
}
