package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/davidbz/ratecard/internal/domain"
)

//go:embed models.yaml
var embeddedCatalog []byte

// Catalog is the canonical source of truth for what models exist, what
// they cost, and what names resolve to them. It is built once at process
// start and read-only afterwards, so it is safe for concurrent use.
type Catalog struct {
	providers map[domain.Provider]*providerCatalog
}

type providerCatalog struct {
	stripDateSuffix bool
	aliases         map[string]string
	models          map[string]Model
	ids             []string // sorted once at load
}

// Load parses the embedded pricing artifact.
func Load() (*Catalog, error) {
	return parse(embeddedCatalog)
}

// LoadFile parses a pricing artifact from disk, overriding the embedded one.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	cat := &Catalog{providers: make(map[domain.Provider]*providerCatalog, len(file.Providers))}

	for name, entry := range file.Providers {
		provider, err := domain.ParseProvider(name)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}

		pc := &providerCatalog{
			stripDateSuffix: entry.StripDateSuffix,
			aliases:         entry.Aliases,
			models:          make(map[string]Model, len(entry.Models)),
			ids:             make([]string, 0, len(entry.Models)),
		}
		if pc.aliases == nil {
			pc.aliases = map[string]string{}
		}

		for _, model := range entry.Models {
			if model.ID == "" {
				return nil, fmt.Errorf("catalog: %s has a model with no id", provider)
			}
			if _, dup := pc.models[model.ID]; dup {
				return nil, fmt.Errorf("catalog: duplicate %s model id %q", provider, model.ID)
			}
			if err := validatePricing(provider, model); err != nil {
				return nil, err
			}
			pc.models[model.ID] = model
			pc.ids = append(pc.ids, model.ID)
		}
		sort.Strings(pc.ids)

		for alias, target := range pc.aliases {
			if _, ok := pc.models[target]; !ok {
				return nil, fmt.Errorf("catalog: %s alias %q targets unknown model %q",
					provider, alias, target)
			}
		}

		cat.providers[provider] = pc
	}

	return cat, nil
}

func validatePricing(provider domain.Provider, model Model) error {
	p := model.Pricing

	rates := map[string]float64{
		"input":                 p.Input,
		"output":                p.Output,
		"input_over_200k":       p.InputOver200K,
		"output_over_200k":      p.OutputOver200K,
		"cache_write_over_200k": p.CacheWriteOver200K,
		"cache_read_over_200k":  p.CacheReadOver200K,
	}
	optional := map[string]*float64{
		"cached":             p.Cached,
		"cache_read":         p.CacheRead,
		"cache_write":        p.CacheWrite,
		"batch_input":        p.BatchInput,
		"batch_output":       p.BatchOutput,
		"reasoning_per_mtok": p.ReasoningPerMTok,
		"request_fee_per_1k": p.RequestFeePer1K,
	}
	for name, v := range optional {
		if v != nil {
			rates[name] = *v
		}
	}
	for name, rate := range rates {
		if rate < 0 {
			return fmt.Errorf("catalog: %s model %s has negative rate %s",
				provider, model.ID, name)
		}
	}

	if p.Tiered && (p.InputOver200K <= 0 || p.OutputOver200K <= 0) {
		return fmt.Errorf("catalog: %s model %s is tiered but lacks over-200k rates",
			provider, model.ID)
	}

	for bucket, rate := range p.Buckets {
		switch domain.ContextSize(bucket) {
		case domain.ContextSizeLow, domain.ContextSizeMedium, domain.ContextSizeHigh:
		default:
			return fmt.Errorf("catalog: %s model %s has unknown bucket %q",
				provider, model.ID, bucket)
		}
		if rate.Input < 0 || rate.Output < 0 {
			return fmt.Errorf("catalog: %s model %s bucket %s has a negative rate",
				provider, model.ID, bucket)
		}
	}

	return nil
}

// Find resolves a raw model name and looks it up. Unknown models fail with
// a domain.UnknownModelError; silently guessing a price is a
// financial-correctness bug, not a usability nicety.
func (c *Catalog) Find(provider domain.Provider, rawName string) (Model, error) {
	pc, ok := c.providers[provider]
	if !ok {
		return Model{}, &domain.UnknownModelError{Provider: provider, Name: rawName}
	}

	id := pc.resolve(rawName)
	model, ok := pc.models[id]
	if !ok {
		return Model{}, &domain.UnknownModelError{
			Provider: provider,
			Name:     rawName,
			ValidIDs: pc.ids,
		}
	}
	return model, nil
}

// Resolve maps an alias or dated snapshot name to its canonical model ID.
// Unresolvable names are returned unchanged; the unknown-model decision
// belongs to Find.
func (c *Catalog) Resolve(provider domain.Provider, rawName string) string {
	pc, ok := c.providers[provider]
	if !ok {
		return rawName
	}
	return pc.resolve(rawName)
}

// IsValidModelID reports whether id is a canonical model ID. Advisory:
// unknown provider or id returns false, never an error.
func (c *Catalog) IsValidModelID(provider domain.Provider, id string) bool {
	pc, ok := c.providers[provider]
	if !ok {
		return false
	}
	_, ok = pc.models[id]
	return ok
}

// ModelIDs returns the sorted canonical model IDs for a provider.
func (c *Catalog) ModelIDs(provider domain.Provider) []string {
	pc, ok := c.providers[provider]
	if !ok {
		return nil
	}
	ids := make([]string, len(pc.ids))
	copy(ids, pc.ids)
	return ids
}

// SupportsVision reports whether the model accepts image input. Advisory:
// a stale model list must not crash a capability check.
func (c *Catalog) SupportsVision(provider domain.Provider, rawName string) bool {
	pc, ok := c.providers[provider]
	if !ok {
		return false
	}
	model, ok := pc.models[pc.resolve(rawName)]
	return ok && model.Vision
}
