package domain

import "context"

// Calculator rates usage for a single provider family.
type Calculator interface {
	// Provider returns the provider family this calculator prices.
	Provider() Provider

	// Calculate produces a cost breakdown for the given model and usage.
	Calculate(ctx context.Context, model string, usage *UsageRecord) (CostBreakdown, error)
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]interface{})
}
