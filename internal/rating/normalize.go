package rating

import "github.com/davidbz/ratecard/internal/domain"

// Provider APIs report usage under different field names. The wire structs
// below match each provider's response body; Normalize maps them into the
// common UsageRecord shape before rating.

// AnthropicUsage mirrors the usage block of an Anthropic messages response.
type AnthropicUsage struct {
	InputTokens              int `json:"input_tokens"`
	OutputTokens             int `json:"output_tokens"`
	CacheReadInputTokens     int `json:"cache_read_input_tokens"`
	CacheCreationInputTokens int `json:"cache_creation_input_tokens"`
	ServerToolUse            struct {
		WebSearchRequests int `json:"web_search_requests"`
	} `json:"server_tool_use"`
}

// Normalize maps Anthropic usage into the common shape. Anthropic reports
// cache slices outside input_tokens, so they are folded back into the
// prompt total here.
func (u AnthropicUsage) Normalize() *domain.UsageRecord {
	return &domain.UsageRecord{
		PromptTokens:     u.InputTokens + u.CacheReadInputTokens + u.CacheCreationInputTokens,
		CompletionTokens: u.OutputTokens,
		CacheReadTokens:  u.CacheReadInputTokens,
		CacheWriteTokens: u.CacheCreationInputTokens,
		WebSearchQueries: u.ServerToolUse.WebSearchRequests,
	}
}

// OpenAIUsage mirrors the usage block of an OpenAI completions response.
type OpenAIUsage struct {
	PromptTokens        int `json:"prompt_tokens"`
	CompletionTokens    int `json:"completion_tokens"`
	PromptTokensDetails struct {
		CachedTokens int `json:"cached_tokens"`
	} `json:"prompt_tokens_details"`
}

// Normalize maps OpenAI usage into the common shape. Cached tokens are a
// subset of prompt_tokens already.
func (u OpenAIUsage) Normalize() *domain.UsageRecord {
	return &domain.UsageRecord{
		PromptTokens:     u.PromptTokens,
		CompletionTokens: u.CompletionTokens,
		CacheReadTokens:  u.PromptTokensDetails.CachedTokens,
	}
}

// GoogleUsage mirrors the usageMetadata block of a Gemini response.
type GoogleUsage struct {
	PromptTokenCount        int `json:"promptTokenCount"`
	CandidatesTokenCount    int `json:"candidatesTokenCount"`
	CachedContentTokenCount int `json:"cachedContentTokenCount"`
}

// Normalize maps Gemini usage into the common shape.
func (u GoogleUsage) Normalize() *domain.UsageRecord {
	return &domain.UsageRecord{
		PromptTokens:     u.PromptTokenCount,
		CompletionTokens: u.CandidatesTokenCount,
		CacheReadTokens:  u.CachedContentTokenCount,
	}
}

// PerplexityUsage mirrors the usage block of a Perplexity response.
type PerplexityUsage struct {
	PromptTokens      int    `json:"prompt_tokens"`
	CompletionTokens  int    `json:"completion_tokens"`
	ReasoningTokens   int    `json:"reasoning_tokens"`
	SearchContextSize string `json:"search_context_size"`
}

// Normalize maps Perplexity usage into the common shape.
func (u PerplexityUsage) Normalize() *domain.UsageRecord {
	return &domain.UsageRecord{
		PromptTokens:      u.PromptTokens,
		CompletionTokens:  u.CompletionTokens,
		ReasoningTokens:   u.ReasoningTokens,
		SearchContextSize: domain.ContextSize(u.SearchContextSize),
	}
}
