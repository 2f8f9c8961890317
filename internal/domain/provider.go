package domain

import "fmt"

// Provider identifies an LLM provider family with its own billing rules.
type Provider string

const (
	ProviderAnthropic  Provider = "anthropic"
	ProviderOpenAI     Provider = "openai"
	ProviderGoogle     Provider = "google"
	ProviderPerplexity Provider = "perplexity"
)

// Providers returns all known provider identifiers.
func Providers() []Provider {
	return []Provider{
		ProviderAnthropic,
		ProviderOpenAI,
		ProviderGoogle,
		ProviderPerplexity,
	}
}

// ParseProvider validates a raw provider string.
func ParseProvider(raw string) (Provider, error) {
	switch Provider(raw) {
	case ProviderAnthropic, ProviderOpenAI, ProviderGoogle, ProviderPerplexity:
		return Provider(raw), nil
	default:
		return "", fmt.Errorf("unknown provider: %q", raw)
	}
}

// String implements fmt.Stringer.
func (p Provider) String() string {
	return string(p)
}
