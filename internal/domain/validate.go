package domain

// ValidateUsage applies the argument and shape checks shared by every
// provider calculator. Model and usage must be present; token counts must
// be non-negative. Returns MissingArgumentError or InvalidUsageError.
func ValidateUsage(model string, usage *UsageRecord) error {
	if model == "" {
		return &MissingArgumentError{Argument: "model"}
	}
	if usage == nil {
		return &MissingArgumentError{Argument: "usage"}
	}

	fields := map[string]int{
		"prompt_tokens":      usage.PromptTokens,
		"completion_tokens":  usage.CompletionTokens,
		"cache_read_tokens":  usage.CacheReadTokens,
		"cache_write_tokens": usage.CacheWriteTokens,
		"web_search_queries": usage.WebSearchQueries,
		"web_search_tokens":  usage.WebSearchTokens,
		"reasoning_tokens":   usage.ReasoningTokens,
	}
	for name, v := range fields {
		if v < 0 {
			return &InvalidUsageError{Field: name, Reason: "must be non-negative"}
		}
	}

	return nil
}
