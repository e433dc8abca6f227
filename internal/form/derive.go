package form

import (
	"strings"

	"github.com/goliatone/go-adminforms/pkg/schema"
)

// Deriver maps schema fields onto renderable field configs.
type Deriver struct {
	opts Options
}

// New creates a Deriver with the supplied options.
func New(options Options) *Deriver {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	return &Deriver{opts: opts}
}

// Derive produces the config for a single schema field. The second result is
// false for system-managed fields, which are never user-editable. The one
// exception is the id field: it stays in the output so forms can display it,
// forced to required=false with an "Auto-generated" placeholder, and callers
// render it disabled.
func (d *Deriver) Derive(field schema.Field, overrides Overrides) (FieldConfig, bool) {
	if field.System && field.Name != "id" {
		return FieldConfig{}, false
	}

	cfg := FieldConfig{
		Name:        field.Name,
		Label:       d.opts.Labeler(field.Name),
		Type:        InputText,
		Required:    field.Required,
		Placeholder: "Enter " + field.Name,
	}

	switch field.Type.Normalize() {
	case schema.FieldTypeEmail:
		cfg.Type = InputEmail
		cfg.Placeholder = "Enter email address"
	case schema.FieldTypeURL:
		cfg.Type = InputURL
		cfg.Placeholder = "Enter URL"
	case schema.FieldTypeNumber:
		cfg.Type = InputNumber
		if opts, ok := field.Options.(schema.NumberOptions); ok {
			cfg.Min = cloneFloat(opts.Min)
			cfg.Max = cloneFloat(opts.Max)
		}
	case schema.FieldTypeDate:
		cfg.Type = InputDate
	case schema.FieldTypeBool:
		cfg.Type = InputCheckbox
		cfg.Default = false
	case schema.FieldTypeSelect:
		cfg.Type = InputSelect
		cfg.Options = []string{}
		if opts, ok := field.Options.(schema.SelectOptions); ok && opts.Values != nil {
			cfg.Options = append([]string(nil), opts.Values...)
		}
		cfg.Multiple = field.Multiple()
	case schema.FieldTypeRelation:
		// Choices come from the related collection; callers populate them.
		cfg.Type = InputSelect
		cfg.Options = []string{}
		cfg.Multiple = field.Multiple()
	case schema.FieldTypeFile:
		cfg.Type = InputFile
		cfg.Multiple = field.Multiple()
		if opts, ok := field.Options.(schema.FileOptions); ok && len(opts.MimeTypes) > 0 {
			cfg.Accept = strings.Join(opts.MimeTypes, ",")
		}
	case schema.FieldTypeJSON:
		cfg.Type = InputTextarea
		cfg.Rows = 4
		cfg.Placeholder = "Enter JSON data"
	case schema.FieldTypeEditor:
		cfg.Type = InputTextarea
		cfg.Rows = 8
	default:
		if opts, ok := field.Options.(schema.TextOptions); ok {
			cfg.Pattern = opts.Pattern
			cfg.Min = intToFloat(opts.Min)
			cfg.Max = intToFloat(opts.Max)
		}
	}

	if field.Name == "id" {
		cfg.Label = "ID"
		cfg.Placeholder = "Auto-generated"
		cfg.Required = false
	}

	if override, ok := overrides[field.Name]; ok {
		override.apply(&cfg)
	}

	return cfg, true
}

// Fields derives configs for every editable field, preserving schema order.
// The output never exceeds the input in length.
func (d *Deriver) Fields(fields []schema.Field, overrides Overrides) []FieldConfig {
	out := make([]FieldConfig, 0, len(fields))
	for _, field := range fields {
		cfg, ok := d.Derive(field, overrides)
		if !ok {
			continue
		}
		out = append(out, cfg)
	}
	return out
}

func cloneFloat(value *float64) *float64 {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func intToFloat(value *int) *float64 {
	if value == nil {
		return nil
	}
	converted := float64(*value)
	return &converted
}
