package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/ratecard/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	// t.Setenv registers the restore; unset so envDefault applies.
	t.Setenv("RATECARD_CATALOG_PATH", "")
	t.Setenv("RATECARD_EMIT_EVENTS", "true")
	os.Unsetenv("RATECARD_CATALOG_PATH")
	os.Unsetenv("RATECARD_EMIT_EVENTS")

	cfg := config.Load()

	require.Empty(t, cfg.Catalog.Path)
	require.True(t, cfg.Rating.EmitEvents)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("RATECARD_CATALOG_PATH", "/etc/ratecard/models.yaml")
	t.Setenv("RATECARD_EMIT_EVENTS", "false")

	cfg := config.Load()

	require.Equal(t, "/etc/ratecard/models.yaml", cfg.Catalog.Path)
	require.False(t, cfg.Rating.EmitEvents)
}

func TestParseDependenciesConfig(t *testing.T) {
	cfg := config.Load()

	deps := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.Catalog, deps.CatalogConfig)
	require.Same(t, &cfg.Rating, deps.RatingConfig)
}
