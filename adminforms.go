// Package adminforms turns collection schemas into renderable admin forms:
// it derives field configurations from a backend's schema, validates and
// prepares collected input, and submits the result. The root package
// re-exports the common types and entry points; the pkg tree holds the
// individual stages for callers that compose their own pipeline.
package adminforms

import (
	"github.com/goliatone/go-adminforms/pkg/backend"
	"github.com/goliatone/go-adminforms/pkg/dates"
	"github.com/goliatone/go-adminforms/pkg/form"
	"github.com/goliatone/go-adminforms/pkg/orchestrator"
	"github.com/goliatone/go-adminforms/pkg/prepare"
	"github.com/goliatone/go-adminforms/pkg/schema"
	"github.com/goliatone/go-adminforms/pkg/validation"
)

// Core schema and form types, re-exported for convenience.
type (
	Collection  = schema.Collection
	Field       = schema.Field
	FieldType   = schema.FieldType
	FieldConfig = form.FieldConfig
	Override    = form.Override
	Overrides   = form.Overrides
	Record      = backend.Record
)

// New constructs a pipeline orchestrator. See pkg/orchestrator for options.
func New(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewClient constructs an HTTP backend client.
func NewClient(baseURL string, options ...backend.Option) (*backend.Client, error) {
	return backend.New(baseURL, options...)
}

// DeriveConfig derives the form config for a single schema field. The second
// result is false for non-editable (system) fields.
func DeriveConfig(field Field, overrides Overrides) (FieldConfig, bool) {
	return form.DeriveConfig(field, overrides)
}

// BuildFields derives form configs for an ordered field list.
func BuildFields(fields []Field, overrides Overrides) []FieldConfig {
	return form.BuildFields(fields, overrides)
}

// Validate checks a raw record against the schema fields and returns the
// human-readable violations; empty means valid.
func Validate(data map[string]any, fields []Field) []string {
	return validation.Validate(data, fields)
}

// Prepare coerces a raw record into the typed shape the backend expects.
func Prepare(data map[string]any, fields []Field) map[string]any {
	return prepare.Prepare(data, fields)
}

// FormatDateForInput renders a backend date string as YYYY-MM-DD for date
// inputs; empty string when the input is empty or unparsable.
func FormatDateForInput(value string) string {
	return dates.FormatForInput(value)
}

// FormatDateForDisplay renders a backend date string as MM/DD/YYYY for list
// views; empty string when the input is empty or unparsable.
func FormatDateForDisplay(value string) string {
	return dates.FormatForDisplay(value)
}
