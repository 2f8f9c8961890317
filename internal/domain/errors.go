package domain

import (
	"fmt"
	"strings"
)

// MissingArgumentError indicates a required call argument was absent.
// Always a caller bug; never retried.
type MissingArgumentError struct {
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Argument)
}

// InvalidUsageError indicates a usage field is present but malformed
// (negative count, unknown enum value). Caller bug; never retried.
type InvalidUsageError struct {
	Field  string
	Reason string
}

func (e *InvalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage field %s: %s", e.Field, e.Reason)
}

// UnknownModelError indicates the model name, after alias and date-suffix
// resolution, matches no registry entry for the provider. It carries the
// attempted name and the valid IDs for diagnostics; operationally this
// means the catalog is stale and should alert, never default to $0.
type UnknownModelError struct {
	Provider Provider
	Name     string
	ValidIDs []string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("unknown %s model %q (valid: %s)",
		e.Provider, e.Name, strings.Join(e.ValidIDs, ", "))
}

// PricingDataError indicates an internal consistency failure (negative or
// non-finite computed cost). It signals a rate-table data error, not bad
// usage data, and should be treated as alerting.
type PricingDataError struct {
	Provider Provider
	Model    string
	Detail   string
}

func (e *PricingDataError) Error() string {
	return fmt.Sprintf("pricing data error for %s model %s: %s",
		e.Provider, e.Model, e.Detail)
}
