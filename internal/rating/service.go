package rating

import (
	"context"
	"fmt"

	"github.com/davidbz/ratecard/internal/domain"
	"github.com/davidbz/ratecard/internal/observability"
)

// Service wraps the engine with structured logging and event publication.
// The engine itself stays pure; every observability concern lives here.
type Service struct {
	engine *Engine
	events domain.EventPublisher
}

// NewService creates a rating service (DI constructor). events may be nil.
func NewService(engine *Engine, events domain.EventPublisher) *Service {
	return &Service{
		engine: engine,
		events: events,
	}
}

// Rate validates the raw provider name, rates the usage, and logs the
// computed breakdown alongside the original usage.
func (s *Service) Rate(
	ctx context.Context,
	providerName string,
	model string,
	usage *domain.UsageRecord,
) (domain.CostBreakdown, error) {
	if providerName == "" {
		return domain.CostBreakdown{}, &domain.MissingArgumentError{Argument: "provider"}
	}

	provider, err := domain.ParseProvider(providerName)
	if err != nil {
		return domain.CostBreakdown{}, fmt.Errorf("rating failed: %w", err)
	}

	ctx = observability.WithProvider(ctx, provider.String())
	ctx = observability.WithModel(ctx, model)
	logger := observability.FromContext(ctx)

	if usage != nil && usage.CacheReadTokens+usage.CacheWriteTokens > usage.PromptTokens {
		// The carve-out clamps this to zero downstream, but over-reported
		// cache counts usually mean an upstream data integrity bug.
		logger.Warn("cache tokens exceed prompt tokens",
			observability.Int("prompt_tokens", usage.PromptTokens),
			observability.Int("cache_read_tokens", usage.CacheReadTokens),
			observability.Int("cache_write_tokens", usage.CacheWriteTokens),
		)
	}

	breakdown, err := s.engine.CalculateCost(ctx, provider, model, usage)
	if err != nil {
		return domain.CostBreakdown{}, fmt.Errorf("rating failed: %w", err)
	}

	logger.Info("usage rated",
		observability.Int("prompt_tokens", usage.PromptTokens),
		observability.Int("completion_tokens", usage.CompletionTokens),
		observability.Float64("input_cost", breakdown.Input),
		observability.Float64("output_cost", breakdown.Output),
		observability.Float64("total_cost", breakdown.Total),
	)

	if s.events != nil {
		s.events.Publish(ctx, "usage.rated", map[string]interface{}{
			"provider":          provider.String(),
			"model":             model,
			"prompt_tokens":     usage.PromptTokens,
			"completion_tokens": usage.CompletionTokens,
			"total_cost":        breakdown.Total,
		})
	}

	return breakdown, nil
}
