// Package openai rates usage for OpenAI models: flat token pricing with an
// optional cached-input discount and two web-search billing dimensions
// (result tokens at the model input rate, queries at a per-family flat rate).
package openai

import (
	"context"
	"strings"

	"github.com/davidbz/ratecard/internal/catalog"
	"github.com/davidbz/ratecard/internal/domain"
)

// defaultWebSearchPer1KQueries applies when no family override matches.
const defaultWebSearchPer1KQueries = 30.00

// webSearchPer1KOverrides maps model-family prefixes to per-1000-query
// rates. Longest matching prefix wins.
var webSearchPer1KOverrides = map[string]float64{
	"gpt-4o-mini": 25.00,
	"gpt-5-mini":  25.00,
}

// Calculator rates OpenAI usage.
type Calculator struct {
	catalog *catalog.Catalog
}

// NewCalculator creates an OpenAI cost calculator.
func NewCalculator(cat *catalog.Catalog) *Calculator {
	return &Calculator{catalog: cat}
}

// Provider returns the provider family this calculator prices.
func (c *Calculator) Provider() domain.Provider {
	return domain.ProviderOpenAI
}

// Calculate produces a cost breakdown for the given model and usage.
func (c *Calculator) Calculate(
	_ context.Context,
	model string,
	usage *domain.UsageRecord,
) (domain.CostBreakdown, error) {
	if err := domain.ValidateUsage(model, usage); err != nil {
		return domain.CostBreakdown{}, err
	}

	entry, err := c.catalog.Find(domain.ProviderOpenAI, model)
	if err != nil {
		return domain.CostBreakdown{}, err
	}
	pricing := entry.Pricing

	var inputCost float64
	if usage.CacheReadTokens > 0 && pricing.Cached != nil {
		baseTokens := usage.PromptTokens - usage.CacheReadTokens
		if baseTokens < 0 {
			baseTokens = 0
		}
		cachedRate := *pricing.Cached
		inputCost = domain.TokensPerMillion(baseTokens)*pricing.Input +
			domain.TokensPerMillion(usage.CacheReadTokens)*cachedRate
	} else {
		inputCost = domain.TokensPerMillion(usage.PromptTokens) * pricing.Input
	}

	// Search result tokens are consumed as context and billed at the
	// model's own input rate, not as a separate line.
	if usage.WebSearchTokens > 0 {
		inputCost += domain.TokensPerMillion(usage.WebSearchTokens) * pricing.Input
	}

	outputCost := domain.TokensPerMillion(usage.CompletionTokens) * pricing.Output

	breakdown := domain.CostBreakdown{
		Input:  domain.RoundCost(inputCost),
		Output: domain.RoundCost(outputCost),
	}
	if usage.WebSearchQueries > 0 {
		breakdown.WebSearchQueries = usage.WebSearchQueries
		breakdown.WebSearchQueryCost = domain.RoundCost(
			float64(usage.WebSearchQueries) / 1000 * webSearchQueryRate(entry.ID))
	}
	breakdown.Total = domain.RoundCost(breakdown.Input + breakdown.Output + breakdown.WebSearchQueryCost)

	return breakdown, nil
}

func webSearchQueryRate(modelID string) float64 {
	rate := defaultWebSearchPer1KQueries
	longest := 0
	for prefix, override := range webSearchPer1KOverrides {
		if strings.HasPrefix(modelID, prefix) && len(prefix) > longest {
			rate = override
			longest = len(prefix)
		}
	}
	return rate
}
