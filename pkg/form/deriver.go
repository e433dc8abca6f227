package form

import (
	internalform "github.com/goliatone/go-adminforms/internal/form"
	"github.com/goliatone/go-adminforms/pkg/schema"
)

// Deriver converts schema fields into field configs.
type Deriver interface {
	Derive(field schema.Field, overrides Overrides) (FieldConfig, bool)
	Fields(fields []schema.Field, overrides Overrides) []FieldConfig
}

// DeriverOption configures the deriver behaviour.
type DeriverOption func(*deriverOptions)

type deriverOptions struct {
	labeler func(string) string
}

// WithLabeler overrides the default label generation function.
func WithLabeler(labeler func(string) string) DeriverOption {
	return func(opts *deriverOptions) {
		opts.labeler = labeler
	}
}

// NewDeriver returns a Deriver backed by the internal implementation.
func NewDeriver(options ...DeriverOption) Deriver {
	cfg := deriverOptions{}
	for _, opt := range options {
		opt(&cfg)
	}

	internalOpts := internalform.Options{}
	if cfg.labeler != nil {
		internalOpts.Labeler = cfg.labeler
	}

	return internalform.New(internalOpts)
}

// DefaultLabeler upper-cases the first character of a field name.
func DefaultLabeler(name string) string {
	return internalform.DefaultLabeler(name)
}

// HumanizeLabeler splits a field name into capitalised words.
func HumanizeLabeler(name string) string {
	return internalform.HumanizeLabeler(name)
}

// DeriveConfig derives the config for one field using default options.
func DeriveConfig(field schema.Field, overrides Overrides) (FieldConfig, bool) {
	return NewDeriver().Derive(field, overrides)
}

// BuildFields derives configs for an ordered field list using default
// options, dropping non-editable fields while preserving relative order.
func BuildFields(fields []schema.Field, overrides Overrides) []FieldConfig {
	return NewDeriver().Fields(fields, overrides)
}
