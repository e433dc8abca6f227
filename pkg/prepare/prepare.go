// Package prepare coerces raw form records into the typed shape the backend
// expects. Raw values typically arrive as strings straight from form
// controls; Prepare turns them into numbers, booleans, parsed JSON, and
// correctly-shaped multi-value slices per the field type.
//
// Coercion never fails: values that cannot be converted are either passed
// through unchanged (JSON) or omitted from the output (numbers).
package prepare

import (
	"encoding/json"

	"github.com/goliatone/go-adminforms/internal/coerce"
	"github.com/goliatone/go-adminforms/pkg/schema"
)

// Prepare builds the submission record for data against the schema fields.
// Only fields present in the schema appear in the output; raw keys without a
// matching field are dropped. A field whose raw value is absent or nil is
// omitted entirely.
func Prepare(data map[string]any, fields []schema.Field) map[string]any {
	out := make(map[string]any, len(fields))

	for _, field := range fields {
		value, exists := data[field.Name]
		if !exists || value == nil {
			continue
		}

		switch field.Type.Normalize() {
		case schema.FieldTypeNumber:
			// Empty and unparsable values are dropped rather than
			// submitted as null or NaN.
			if number, ok := coerce.Number(value); ok {
				out[field.Name] = number
			}
		case schema.FieldTypeBool:
			out[field.Name] = coerce.Bool(value)
		case schema.FieldTypeJSON:
			out[field.Name] = parseJSONValue(value)
		case schema.FieldTypeSelect, schema.FieldTypeRelation:
			if shaped, ok := shapeSelection(value, field.Multiple()); ok {
				out[field.Name] = shaped
			}
		default:
			// text, editor, email, url, date, and file values are the
			// caller's responsibility; pass them through unchanged.
			out[field.Name] = value
		}
	}

	return out
}

// parseJSONValue attempts to parse string values as JSON. Parse failures hand
// the original string back unchanged so a half-typed payload is never lost.
func parseJSONValue(value any) any {
	raw, isString := value.(string)
	if !isString {
		return value
	}
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return raw
	}
	return parsed
}

// shapeSelection normalises select/relation values: multi-value fields always
// submit a slice (scalars get wrapped), single-value fields always submit a
// scalar (slices get unwrapped to their first element). An empty slice on a
// single-value field yields nothing to submit.
func shapeSelection(value any, multiple bool) (any, bool) {
	values, isSlice := asSlice(value)

	if multiple {
		if isSlice {
			return values, true
		}
		return []any{value}, true
	}

	if !isSlice {
		return value, true
	}
	if len(values) == 0 {
		return nil, false
	}
	return values[0], true
}

func asSlice(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = item
		}
		return out, true
	}
	return nil, false
}
