package perplexity_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/ratecard/internal/catalog"
	"github.com/davidbz/ratecard/internal/domain"
	"github.com/davidbz/ratecard/internal/provider/perplexity"
)

func newCalculator(t *testing.T) *perplexity.Calculator {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return perplexity.NewCalculator(cat)
}

func TestCalculator_Calculate(t *testing.T) {
	ctx := context.Background()
	calc := newCalculator(t)

	tests := []struct {
		name  string
		model string
		usage domain.UsageRecord
		want  domain.CostBreakdown
	}{
		{
			name:  "base family low bucket",
			model: "sonar",
			usage: domain.UsageRecord{
				PromptTokens:      1_000_000,
				CompletionTokens:  500_000,
				SearchContextSize: domain.ContextSizeLow,
			},
			want: domain.CostBreakdown{Input: 1.0, Output: 0.5, Total: 1.5},
		},
		{
			name:  "bucket selects the rate",
			model: "sonar",
			usage: domain.UsageRecord{
				PromptTokens:      1_000_000,
				SearchContextSize: domain.ContextSizeHigh,
			},
			want: domain.CostBreakdown{Input: 2.5, Total: 2.5},
		},
		{
			name:  "empty context size defaults to low bucket",
			model: "sonar",
			usage: domain.UsageRecord{PromptTokens: 1_000_000},
			want:  domain.CostBreakdown{Input: 1.0, Total: 1.0},
		},
		{
			name:  "reasoning-pro prefix wins over reasoning",
			model: "sonar-reasoning-pro",
			usage: domain.UsageRecord{
				PromptTokens:      1_000_000,
				SearchContextSize: domain.ContextSizeLow,
			},
			want: domain.CostBreakdown{Input: 2.0, Total: 2.0},
		},
		{
			name:  "reasoning family without pro suffix",
			model: "sonar-reasoning",
			usage: domain.UsageRecord{
				PromptTokens:      1_000_000,
				SearchContextSize: domain.ContextSizeLow,
			},
			want: domain.CostBreakdown{Input: 1.0, Total: 1.0},
		},
		{
			name:  "deep research bills reasoning tokens outside output",
			model: "sonar-deep-research",
			usage: domain.UsageRecord{
				PromptTokens:      1_000_000,
				CompletionTokens:  500_000,
				ReasoningTokens:   2_000,
				SearchContextSize: domain.ContextSizeLow,
			},
			// reasoning 2000 tokens @ $3/MTok = 0.006
			want: domain.CostBreakdown{
				Input:         2.0,
				Output:        4.0,
				Total:         6.006,
				ReasoningCost: 0.006,
			},
		},
		{
			name:  "reasoning tokens ignored outside deep research family",
			model: "sonar-reasoning",
			usage: domain.UsageRecord{
				PromptTokens:      1_000_000,
				ReasoningTokens:   2_000,
				SearchContextSize: domain.ContextSizeLow,
			},
			want: domain.CostBreakdown{Input: 1.0, Total: 1.0},
		},
		{
			name:  "versioned model name normalizes to its family",
			model: "sonar-pro-2025-06-01",
			usage: domain.UsageRecord{
				PromptTokens:      1_000_000,
				SearchContextSize: domain.ContextSizeLow,
			},
			want: domain.CostBreakdown{Input: 3.0, Total: 3.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Calculate(ctx, tt.model, &tt.usage)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCalculator_Errors(t *testing.T) {
	ctx := context.Background()
	calc := newCalculator(t)

	t.Run("unknown family", func(t *testing.T) {
		_, err := calc.Calculate(ctx, "llama-3-70b", &domain.UsageRecord{})
		var unknown *domain.UnknownModelError
		require.ErrorAs(t, err, &unknown)
		require.Equal(t, "llama-3-70b", unknown.Name)
		require.Contains(t, unknown.ValidIDs, "sonar-deep-research")
	})

	t.Run("invalid context size", func(t *testing.T) {
		_, err := calc.Calculate(ctx, "sonar", &domain.UsageRecord{
			SearchContextSize: domain.ContextSize("huge"),
		})
		var invalid *domain.InvalidUsageError
		require.ErrorAs(t, err, &invalid)
		require.Equal(t, "search_context_size", invalid.Field)
	})
}
