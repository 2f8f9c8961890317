package catalog

// Model represents one purchasable model version in the catalog.
// Entries are defined at load time and never mutated; superseded models
// stay in the file so historical usage records keep rating correctly.
type Model struct {
	ID          string  `yaml:"id"`
	DisplayName string  `yaml:"display_name"`
	Vision      bool    `yaml:"vision,omitempty"`
	Pricing     Pricing `yaml:"pricing"`
}

// Pricing is a per-model rate table. All rates are USD per one million
// tokens. Optional pointer fields that are nil mean the billing dimension
// is unsupported for that model and calculators fall back to the base rate.
type Pricing struct {
	Input  float64 `yaml:"input"`
	Output float64 `yaml:"output"`

	// Tiered models switch every rate to its over-200k variant once the
	// prompt exceeds 200,000 tokens.
	Tiered             bool    `yaml:"tiered,omitempty"`
	InputOver200K      float64 `yaml:"input_over_200k,omitempty"`
	OutputOver200K     float64 `yaml:"output_over_200k,omitempty"`
	CacheWriteOver200K float64 `yaml:"cache_write_over_200k,omitempty"`
	CacheReadOver200K  float64 `yaml:"cache_read_over_200k,omitempty"`

	Cached     *float64 `yaml:"cached,omitempty"`
	CacheRead  *float64 `yaml:"cache_read,omitempty"`
	CacheWrite *float64 `yaml:"cache_write,omitempty"`

	BatchInput  *float64 `yaml:"batch_input,omitempty"`
	BatchOutput *float64 `yaml:"batch_output,omitempty"`

	// Perplexity models price tokens by search-context bucket.
	Buckets map[string]BucketRate `yaml:"buckets,omitempty"`

	ReasoningPerMTok *float64 `yaml:"reasoning_per_mtok,omitempty"`

	// RequestFeePer1K is a historical per-request fee kept for reference.
	// It is loaded but never applied by any calculator.
	RequestFeePer1K *float64 `yaml:"request_fee_per_1k,omitempty"`
}

// BucketRate holds per-bucket token rates for context-size-priced models.
type BucketRate struct {
	Input  float64 `yaml:"input"`
	Output float64 `yaml:"output"`
}

// providerEntry is the YAML shape of one provider section.
type providerEntry struct {
	StripDateSuffix bool              `yaml:"strip_date_suffix,omitempty"`
	Aliases         map[string]string `yaml:"aliases,omitempty"`
	Models          []Model           `yaml:"models"`
}

// catalogFile is the YAML shape of the whole pricing artifact.
type catalogFile struct {
	Providers map[string]providerEntry `yaml:"providers"`
}
