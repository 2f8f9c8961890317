package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"
)

// Config represents the rating service configuration.
type Config struct {
	Catalog CatalogConfig
	Rating  RatingConfig
}

// CatalogConfig controls where pricing data is loaded from.
type CatalogConfig struct {
	// Path points at an external catalog file. Empty means the embedded
	// catalog is used.
	Path string `env:"RATECARD_CATALOG_PATH"`
}

// RatingConfig contains rating service settings.
type RatingConfig struct {
	EmitEvents bool `env:"RATECARD_EMIT_EVENTS" envDefault:"true"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*CatalogConfig
	*RatingConfig
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Catalog,
		&cfg.Rating,
	}
}
