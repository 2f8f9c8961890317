// Package rating ties the model catalog and the per-provider calculators
// into a single usage-rating surface.
package rating

import (
	"context"
	"fmt"

	"github.com/davidbz/ratecard/internal/catalog"
	"github.com/davidbz/ratecard/internal/domain"
	"github.com/davidbz/ratecard/internal/provider/anthropic"
	"github.com/davidbz/ratecard/internal/provider/google"
	"github.com/davidbz/ratecard/internal/provider/openai"
	"github.com/davidbz/ratecard/internal/provider/perplexity"
)

// Engine dispatches rating calls to the calculator for each provider
// family. All operations are pure and safe for concurrent use.
type Engine struct {
	catalog    *catalog.Catalog
	anthropic  domain.Calculator
	openai     domain.Calculator
	google     domain.Calculator
	perplexity domain.Calculator
}

// NewEngine creates an engine over the given catalog (DI constructor).
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{
		catalog:    cat,
		anthropic:  anthropic.NewCalculator(cat),
		openai:     openai.NewCalculator(cat),
		google:     google.NewCalculator(cat),
		perplexity: perplexity.NewCalculator(cat),
	}
}

// Catalog returns the model catalog backing this engine.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// CalculateCost rates usage for the given provider and model.
func (e *Engine) CalculateCost(
	ctx context.Context,
	provider domain.Provider,
	model string,
	usage *domain.UsageRecord,
) (domain.CostBreakdown, error) {
	calc, err := e.calculator(provider)
	if err != nil {
		return domain.CostBreakdown{}, err
	}
	return calc.Calculate(ctx, model, usage)
}

func (e *Engine) calculator(provider domain.Provider) (domain.Calculator, error) {
	switch provider {
	case domain.ProviderAnthropic:
		return e.anthropic, nil
	case domain.ProviderOpenAI:
		return e.openai, nil
	case domain.ProviderGoogle:
		return e.google, nil
	case domain.ProviderPerplexity:
		return e.perplexity, nil
	default:
		return nil, fmt.Errorf("no calculator for provider %q", provider)
	}
}
