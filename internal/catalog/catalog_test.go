package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/ratecard/internal/catalog"
	"github.com/davidbz/ratecard/internal/domain"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	t.Run("find known model", func(t *testing.T) {
		model, err := cat.Find(domain.ProviderAnthropic, "claude-haiku-4-5")
		require.NoError(t, err)
		require.Equal(t, "claude-haiku-4-5", model.ID)
		require.Equal(t, "Claude Haiku 4.5", model.DisplayName)
		require.InDelta(t, 1.00, model.Pricing.Input, 1e-9)
		require.InDelta(t, 5.00, model.Pricing.Output, 1e-9)
	})

	t.Run("unknown model fails with typed error", func(t *testing.T) {
		_, err := cat.Find(domain.ProviderAnthropic, "not-a-real-model-xyz")
		require.Error(t, err)

		var unknown *domain.UnknownModelError
		require.ErrorAs(t, err, &unknown)
		require.Equal(t, "not-a-real-model-xyz", unknown.Name)
		require.Equal(t, domain.ProviderAnthropic, unknown.Provider)
		require.Contains(t, unknown.ValidIDs, "claude-opus-4-6")
		require.Contains(t, err.Error(), "not-a-real-model-xyz")
		require.Contains(t, err.Error(), "claude-opus-4-6")
	})

	t.Run("advisory queries never error", func(t *testing.T) {
		require.True(t, cat.IsValidModelID(domain.ProviderOpenAI, "gpt-4o"))
		require.False(t, cat.IsValidModelID(domain.ProviderOpenAI, "gpt-9"))
		require.False(t, cat.IsValidModelID(domain.Provider("mistral"), "mistral-large"))

		ids := cat.ModelIDs(domain.ProviderOpenAI)
		require.Contains(t, ids, "gpt-4o")
		require.Contains(t, ids, "gpt-5.1")
		require.IsIncreasing(t, ids)

		require.Nil(t, cat.ModelIDs(domain.Provider("mistral")))
	})

	t.Run("vision capability", func(t *testing.T) {
		require.True(t, cat.SupportsVision(domain.ProviderOpenAI, "gpt-4o"))
		require.True(t, cat.SupportsVision(domain.ProviderAnthropic, "claude-haiku-4-5"))
		require.False(t, cat.SupportsVision(domain.ProviderAnthropic, "claude-3-5-haiku"))
		require.False(t, cat.SupportsVision(domain.ProviderOpenAI, "gpt-9"))
	})

	t.Run("every provider has models", func(t *testing.T) {
		for _, provider := range domain.Providers() {
			require.NotEmpty(t, cat.ModelIDs(provider), "provider %s", provider)
		}
	})
}

func TestLoadFile_Validation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "negative rate rejected",
			yaml: `
providers:
  openai:
    models:
      - id: gpt-test
        display_name: Test
        pricing:
          input: -1.0
          output: 2.0
`,
			wantErr: "negative rate",
		},
		{
			name: "alias targeting unknown model rejected",
			yaml: `
providers:
  openai:
    aliases:
      gpt-test-latest: gpt-missing
    models:
      - id: gpt-test
        display_name: Test
        pricing:
          input: 1.0
          output: 2.0
`,
			wantErr: "targets unknown model",
		},
		{
			name: "tiered model without over-200k rates rejected",
			yaml: `
providers:
  anthropic:
    models:
      - id: claude-test
        display_name: Test
        pricing:
          tiered: true
          input: 1.0
          output: 2.0
`,
			wantErr: "lacks over-200k rates",
		},
		{
			name: "duplicate model id rejected",
			yaml: `
providers:
  openai:
    models:
      - id: gpt-test
        display_name: Test
        pricing: {input: 1.0, output: 2.0}
      - id: gpt-test
        display_name: Test Again
        pricing: {input: 1.0, output: 2.0}
`,
			wantErr: "duplicate",
		},
		{
			name: "unknown provider rejected",
			yaml: `
providers:
  mistral:
    models:
      - id: mistral-large
        display_name: Test
        pricing: {input: 1.0, output: 2.0}
`,
			wantErr: "unknown provider",
		},
		{
			name: "unknown bucket rejected",
			yaml: `
providers:
  perplexity:
    models:
      - id: sonar
        display_name: Sonar
        pricing:
          input: 1.0
          output: 1.0
          buckets:
            huge: {input: 1.0, output: 1.0}
`,
			wantErr: "unknown bucket",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "models.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o600))

			_, err := catalog.LoadFile(path)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := catalog.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("valid file overrides embedded catalog", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "models.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
providers:
  openai:
    models:
      - id: gpt-test
        display_name: Test
        pricing: {input: 1.0, output: 2.0}
`), 0o600))

		cat, err := catalog.LoadFile(path)
		require.NoError(t, err)
		require.True(t, cat.IsValidModelID(domain.ProviderOpenAI, "gpt-test"))
		require.False(t, cat.IsValidModelID(domain.ProviderOpenAI, "gpt-4o"))
	})
}
