// Package perplexity rates usage for Perplexity Sonar models. Model names
// normalize to a fixed set of families by longest-prefix match, token rates
// are selected by the caller-supplied search-context bucket, and the
// deep-research family bills reasoning tokens as a separate surcharge.
package perplexity

import (
	"context"
	"strings"

	"github.com/davidbz/ratecard/internal/catalog"
	"github.com/davidbz/ratecard/internal/domain"
)

// deepResearchFamily is the only family with a reasoning-token surcharge.
const deepResearchFamily = "sonar-deep-research"

// families is ordered longest-prefix-first; family names overlap as
// substrings (sonar-reasoning-pro contains sonar-reasoning), so order
// decides the match.
var families = []string{
	"sonar-deep-research",
	"sonar-reasoning-pro",
	"sonar-reasoning",
	"sonar-pro",
	"sonar",
}

// Calculator rates Perplexity usage.
type Calculator struct {
	catalog *catalog.Catalog
}

// NewCalculator creates a Perplexity cost calculator.
func NewCalculator(cat *catalog.Catalog) *Calculator {
	return &Calculator{catalog: cat}
}

// Provider returns the provider family this calculator prices.
func (c *Calculator) Provider() domain.Provider {
	return domain.ProviderPerplexity
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

	family, ok := normalizeFamily(model)
	if !ok {
		return domain.CostBreakdown{}, &domain.UnknownModelError{
			Provider: domain.ProviderPerplexity,
			Name:     model,
			ValidIDs: c.catalog.ModelIDs(domain.ProviderPerplexity),
		}
	}

	entry, err := c.catalog.Find(domain.ProviderPerplexity, family)
	if err != nil {
		return domain.CostBreakdown{}, err
	}
	pricing := entry.Pricing

	bucket := usage.SearchContextSize
	if bucket == "" {
		bucket = domain.ContextSizeLow
	}
	switch bucket {
	case domain.ContextSizeLow, domain.ContextSizeMedium, domain.ContextSizeHigh:
	default:
		return domain.CostBreakdown{}, &domain.InvalidUsageError{
			Field:  "search_context_size",
			Reason: "must be low, medium, or high",
		}
	}

	inputRate := pricing.Input
	outputRate := pricing.Output
	if rate, ok := pricing.Buckets[string(bucket)]; ok {
		inputRate = rate.Input
		outputRate = rate.Output
	}

	// The historical per-request fee (pricing.RequestFeePer1K) is kept in
	// the rate table for reference and intentionally not applied.

	breakdown := domain.CostBreakdown{
		Input:  domain.RoundCost(domain.TokensPerMillion(usage.PromptTokens) * inputRate),
		Output: domain.RoundCost(domain.TokensPerMillion(usage.CompletionTokens) * outputRate),
	}
	if family == deepResearchFamily && usage.ReasoningTokens > 0 && pricing.ReasoningPerMTok != nil {
		breakdown.ReasoningCost = domain.RoundCost(
			domain.TokensPerMillion(usage.ReasoningTokens) * *pricing.ReasoningPerMTok)
	}
	breakdown.Total = domain.RoundCost(breakdown.Input + breakdown.Output + breakdown.ReasoningCost)

	return breakdown, nil
}

func normalizeFamily(model string) (string, bool) {
	for _, family := range families {
		if strings.HasPrefix(model, family) {
			return family, true
		}
	}
	return "", false
}
