package schema

// Options is the per-type constraint bag attached to a Field. The backend
// reports a loosely-typed JSON object; decoding narrows it into one of the
// variants below keyed by the field type so per-type switches stay exhaustive.
type Options interface {
	fieldOptions()
}

// TextOptions constrains text and editor fields. Min/Max bound the value
// length in characters; Pattern holds an uncompiled regular expression.
type TextOptions struct {
	Min     *int   `json:"min,omitempty"`
	Max     *int   `json:"max,omitempty"`
	Pattern string `json:"pattern,omitempty"`
}

// NumberOptions bounds numeric fields.
type NumberOptions struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// SelectOptions lists the allowed choices for a select field. MaxSelect above
// one marks the field as multi-value.
type SelectOptions struct {
	Values    []string `json:"values,omitempty"`
	MaxSelect int      `json:"maxSelect,omitempty"`
}

// RelationOptions points a relation field at its target collection. The
// pipeline only consumes MaxSelect; CollectionID lets callers resolve the
// related records themselves.
type RelationOptions struct {
	CollectionID string `json:"collectionId,omitempty"`
	MaxSelect    int    `json:"maxSelect,omitempty"`
}

// FileOptions constrains file fields.
type FileOptions struct {
	MaxSelect int      `json:"maxSelect,omitempty"`
	MimeTypes []string `json:"mimeTypes,omitempty"`
}

func (TextOptions) fieldOptions()     {}
func (NumberOptions) fieldOptions()   {}
func (SelectOptions) fieldOptions()   {}
func (RelationOptions) fieldOptions() {}
func (FileOptions) fieldOptions()     {}
