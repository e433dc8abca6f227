package schema

// FieldType enumerates the field kinds a collection schema can declare.
// Types outside this vocabulary are treated as FieldTypeText throughout the
// pipeline.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeEditor   FieldType = "editor"
	FieldTypeNumber   FieldType = "number"
	FieldTypeBool     FieldType = "bool"
	FieldTypeEmail    FieldType = "email"
	FieldTypeURL      FieldType = "url"
	FieldTypeDate     FieldType = "date"
	FieldTypeSelect   FieldType = "select"
	FieldTypeFile     FieldType = "file"
	FieldTypeRelation FieldType = "relation"
	FieldTypeJSON     FieldType = "json"
)

// Known reports whether the type belongs to the recognised vocabulary.
func (t FieldType) Known() bool {
	switch t {
	case FieldTypeText, FieldTypeEditor, FieldTypeNumber, FieldTypeBool,
		FieldTypeEmail, FieldTypeURL, FieldTypeDate, FieldTypeSelect,
		FieldTypeFile, FieldTypeRelation, FieldTypeJSON:
		return true
	}
	return false
}

// Normalize maps unrecognised types onto FieldTypeText so downstream switches
// only need to handle the known vocabulary.
func (t FieldType) Normalize() FieldType {
	if t.Known() {
		return t
	}
	return FieldTypeText
}

// Field describes one attribute of a collection schema as reported by the
// backend. Instances are plain data; the pipeline never mutates them.
type Field struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Type        FieldType `json:"type"`
	System      bool      `json:"system,omitempty"`
	Required    bool      `json:"required,omitempty"`
	Presentable bool      `json:"presentable,omitempty"`
	Options     Options   `json:"options,omitempty"`
}

// MaxSelect returns the configured selection limit for select, relation, and
// file fields. Zero means the field carries no limit.
func (f Field) MaxSelect() int {
	switch opts := f.Options.(type) {
	case SelectOptions:
		return opts.MaxSelect
	case RelationOptions:
		return opts.MaxSelect
	case FileOptions:
		return opts.MaxSelect
	}
	return 0
}

// Multiple reports whether the field accepts more than one value.
func (f Field) Multiple() bool {
	return f.MaxSelect() > 1
}
