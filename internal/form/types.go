package form

// InputType is the UI-facing input kind a renderer binds a field to. It is a
// narrower vocabulary than schema.FieldType: several descriptor types collapse
// onto the same control.
type InputType string

const (
	InputText     InputType = "text"
	InputEmail    InputType = "email"
	InputURL      InputType = "url"
	InputNumber   InputType = "number"
	InputDate     InputType = "date"
	InputCheckbox InputType = "checkbox"
	InputSelect   InputType = "select"
	InputTextarea InputType = "textarea"
	InputFile     InputType = "file"
)

// FieldConfig is the renderable description of one form input, derived from a
// schema field. Configs are disposable: they are recomputed whenever the
// schema or the caller overrides change.
type FieldConfig struct {
	Name        string    `json:"name" yaml:"name"`
	Label       string    `json:"label" yaml:"label"`
	Type        InputType `json:"type" yaml:"type"`
	Required    bool      `json:"required" yaml:"required"`
	Placeholder string    `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty" yaml:"options,omitempty"`
	Multiple    bool      `json:"multiple,omitempty" yaml:"multiple,omitempty"`
	Min         *float64  `json:"min,omitempty" yaml:"min,omitempty"`
	Max         *float64  `json:"max,omitempty" yaml:"max,omitempty"`
	Pattern     string    `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Rows        int       `json:"rows,omitempty" yaml:"rows,omitempty"`
	Accept      string    `json:"accept,omitempty" yaml:"accept,omitempty"`
	Default     any       `json:"default,omitempty" yaml:"default,omitempty"`
}

// Override is a partial FieldConfig. Nil members leave the derived value in
// place; set members replace it wholesale.
type Override struct {
	Label       *string
	Type        *InputType
	Required    *bool
	Placeholder *string
	Options     []string
	Multiple    *bool
	Min         *float64
	Max         *float64
	Pattern     *string
	Rows        *int
	Accept      *string
	Default     any
}

// Overrides maps field names to caller customisations applied after
// derivation. It is the only configuration surface of the pipeline.
type Overrides map[string]Override

func (o Override) apply(cfg *FieldConfig) {
	if o.Label != nil {
		cfg.Label = *o.Label
	}
	if o.Type != nil {
		cfg.Type = *o.Type
	}
	if o.Required != nil {
		cfg.Required = *o.Required
	}
	if o.Placeholder != nil {
		cfg.Placeholder = *o.Placeholder
	}
	if o.Options != nil {
		cfg.Options = append([]string(nil), o.Options...)
	}
	if o.Multiple != nil {
		cfg.Multiple = *o.Multiple
	}
	if o.Min != nil {
		cfg.Min = o.Min
	}
	if o.Max != nil {
		cfg.Max = o.Max
	}
	if o.Pattern != nil {
		cfg.Pattern = *o.Pattern
	}
	if o.Rows != nil {
		cfg.Rows = *o.Rows
	}
	if o.Accept != nil {
		cfg.Accept = *o.Accept
	}
	if o.Default != nil {
		cfg.Default = o.Default
	}
}
