// Package google rates usage for Google models: flat token pricing with a
// cache-read discount and batch-mode rates. Google has no cache-write price
// dimension; writing to the cache costs the same as a normal input token.
package google

import (
	"context"
	"fmt"
	"math"

	"github.com/davidbz/ratecard/internal/catalog"
	"github.com/davidbz/ratecard/internal/domain"
)

// Calculator rates Google usage.
type Calculator struct {
	catalog *catalog.Catalog
}

// NewCalculator creates a Google cost calculator.
func NewCalculator(cat *catalog.Catalog) *Calculator {
	return &Calculator{catalog: cat}
}

// Provider returns the provider family this calculator prices.
func (c *Calculator) Provider() domain.Provider {
	return domain.ProviderGoogle
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

	entry, err := c.catalog.Find(domain.ProviderGoogle, model)
	if err != nil {
		return domain.CostBreakdown{}, err
	}
	pricing := entry.Pricing

	var inputCost, outputCost float64
	switch {
	case usage.BatchMode && pricing.BatchInput != nil && pricing.BatchOutput != nil:
		// Cache accounting is ignored when batch is set.
		inputCost = domain.TokensPerMillion(usage.PromptTokens) * *pricing.BatchInput
		outputCost = domain.TokensPerMillion(usage.CompletionTokens) * *pricing.BatchOutput

	case usage.CacheReadTokens > 0 && pricing.CacheRead != nil:
		baseTokens := usage.PromptTokens - usage.CacheReadTokens
		if baseTokens < 0 {
			baseTokens = 0
		}
		cacheReadRate := *pricing.CacheRead
		inputCost = domain.TokensPerMillion(baseTokens)*pricing.Input +
			domain.TokensPerMillion(usage.CacheReadTokens)*cacheReadRate
		outputCost = domain.TokensPerMillion(usage.CompletionTokens) * pricing.Output

	default:
		inputCost = domain.TokensPerMillion(usage.PromptTokens) * pricing.Input
		outputCost = domain.TokensPerMillion(usage.CompletionTokens) * pricing.Output
	}

	breakdown := domain.CostBreakdown{
		Input:  domain.RoundCost(inputCost),
		Output: domain.RoundCost(outputCost),
	}
	breakdown.Total = domain.RoundCost(breakdown.Input + breakdown.Output)

	// Should be unreachable with a validated catalog; guards against a
	// rate-table typo slipping a negative price into production.
	for name, v := range map[string]float64{
		"input":  breakdown.Input,
		"output": breakdown.Output,
		"total":  breakdown.Total,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.CostBreakdown{}, &domain.PricingDataError{
				Provider: domain.ProviderGoogle,
				Model:    entry.ID,
				Detail:   fmt.Sprintf("computed %s cost %v is not a valid amount", name, v),
			}
		}
	}

	return breakdown, nil
}
