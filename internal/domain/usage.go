package domain

import "math"

// ContextSize selects a Perplexity search-context pricing bucket.
// It is supplied by the caller, never inferred from usage.
type ContextSize string

const (
	ContextSizeLow    ContextSize = "low"
	ContextSizeMedium ContextSize = "medium"
	ContextSizeHigh   ContextSize = "high"
)

// UsageRecord is the normalized per-request consumption report.
// Provider wire formats are mapped into this shape before rating.
type UsageRecord struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`

	// Cache slices are a subset of PromptTokens, never additional.
	CacheReadTokens  int `json:"cache_read_tokens,omitempty"`
	CacheWriteTokens int `json:"cache_write_tokens,omitempty"`

	BatchMode bool `json:"batch_mode,omitempty"`

	WebSearchQueries int `json:"web_search_queries,omitempty"`
	WebSearchTokens  int `json:"web_search_tokens,omitempty"`

	ReasoningTokens   int         `json:"reasoning_tokens,omitempty"`
	SearchContextSize ContextSize `json:"search_context_size,omitempty"`
}

// CostBreakdown is the immutable result of a rating call. All values are
// USD rounded to six decimal places.
type CostBreakdown struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
	Total  float64 `json:"total"`

	// Surcharges are folded into Total but not into Input/Output.
	WebSearchQueries   int     `json:"web_search_queries,omitempty"`
	WebSearchQueryCost float64 `json:"web_search_query_cost,omitempty"`
	ReasoningCost      float64 `json:"reasoning_cost,omitempty"`
}

const costPrecision = 1e6 // six decimal places

// RoundCost rounds a dollar amount to six decimal places, half away from zero.
func RoundCost(v float64) float64 {
	return math.Round(v*costPrecision) / costPrecision
}

// TokensPerMillion converts a token count to millions of tokens.
func TokensPerMillion(tokens int) float64 {
	return float64(tokens) / 1_000_000
}
