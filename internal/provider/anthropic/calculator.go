// Package anthropic rates usage for Anthropic models: tiered pricing above
// 200k prompt tokens, prompt-cache read/write accounting, batch-mode
// discounts, and a flat per-query web-search surcharge.
package anthropic

import (
	"context"

	"github.com/davidbz/ratecard/internal/catalog"
	"github.com/davidbz/ratecard/internal/domain"
)

const (
	// Tiering is an all-or-nothing switch keyed purely on total prompt
	// size; a 200,000-token prompt is still base tier.
	tierThresholdTokens = 200_000

	// Web search is billed per query, not per token.
	webSearchPer1KQueries = 10.00
)

// Calculator rates Anthropic usage.
type Calculator struct {
	catalog *catalog.Catalog
}

// NewCalculator creates an Anthropic cost calculator.
func NewCalculator(cat *catalog.Catalog) *Calculator {
	return &Calculator{catalog: cat}
}

// Provider returns the provider family this calculator prices.
func (c *Calculator) Provider() domain.Provider {
	return domain.ProviderAnthropic
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

	entry, err := c.catalog.Find(domain.ProviderAnthropic, model)
	if err != nil {
		return domain.CostBreakdown{}, err
	}
	pricing := entry.Pricing

	over := pricing.Tiered && usage.PromptTokens > tierThresholdTokens

	inputRate := pricing.Input
	outputRate := pricing.Output
	if over {
		inputRate = pricing.InputOver200K
		outputRate = pricing.OutputOver200K
	}

	// Absent cache rates fall back to the base input rate for the tier.
	cacheWriteRate := inputRate
	cacheReadRate := inputRate
	switch {
	case over:
		if pricing.CacheWriteOver200K > 0 {
			cacheWriteRate = pricing.CacheWriteOver200K
		}
		if pricing.CacheReadOver200K > 0 {
			cacheReadRate = pricing.CacheReadOver200K
		}
	default:
		if pricing.CacheWrite != nil {
			cacheWriteRate = *pricing.CacheWrite
		}
		if pricing.CacheRead != nil {
			cacheReadRate = *pricing.CacheRead
		}
	}

	var inputCost, outputCost float64
	switch {
	case usage.BatchMode:
		// Batch requests cannot also be cache requests; batch wins and
		// cache fields are ignored.
		batchInputRate := inputRate
		if pricing.BatchInput != nil {
			batchInputRate = *pricing.BatchInput
		}
		batchOutputRate := outputRate
		if pricing.BatchOutput != nil {
			batchOutputRate = *pricing.BatchOutput
		}
		inputCost = domain.TokensPerMillion(usage.PromptTokens) * batchInputRate
		outputCost = domain.TokensPerMillion(usage.CompletionTokens) * batchOutputRate

	case usage.CacheReadTokens > 0 || usage.CacheWriteTokens > 0:
		// Cache slices are carved out of the prompt pool; the remainder
		// is clamped at zero to tolerate over-reported cache counts.
		baseTokens := usage.PromptTokens - usage.CacheReadTokens - usage.CacheWriteTokens
		if baseTokens < 0 {
			baseTokens = 0
		}
		inputCost = domain.TokensPerMillion(baseTokens)*inputRate +
			domain.TokensPerMillion(usage.CacheReadTokens)*cacheReadRate +
			domain.TokensPerMillion(usage.CacheWriteTokens)*cacheWriteRate
		outputCost = domain.TokensPerMillion(usage.CompletionTokens) * outputRate

	default:
		inputCost = domain.TokensPerMillion(usage.PromptTokens) * inputRate
		outputCost = domain.TokensPerMillion(usage.CompletionTokens) * outputRate
	}

	breakdown := domain.CostBreakdown{
		Input:  domain.RoundCost(inputCost),
		Output: domain.RoundCost(outputCost),
	}
	if usage.WebSearchQueries > 0 {
		breakdown.WebSearchQueries = usage.WebSearchQueries
		breakdown.WebSearchQueryCost = domain.RoundCost(
			float64(usage.WebSearchQueries) / 1000 * webSearchPer1KQueries)
	}
	breakdown.Total = domain.RoundCost(breakdown.Input + breakdown.Output + breakdown.WebSearchQueryCost)

	return breakdown, nil
}
