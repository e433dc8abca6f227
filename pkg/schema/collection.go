package schema

import "fmt"

// Collection is a named set of records sharing one schema. Fields preserve
// the order reported by the backend; that order drives form field order
// through every pipeline stage.
type Collection struct {
	ID     string  `json:"id,omitempty"`
	Name   string  `json:"name"`
	Type   string  `json:"type,omitempty"`
	Fields []Field `json:"schema"`
}

// Field looks up a field by name.
func (c Collection) Field(name string) (Field, bool) {
	for _, field := range c.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// FieldNames returns the field names in schema order.
func (c Collection) FieldNames() []string {
	if len(c.Fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(c.Fields))
	for _, field := range c.Fields {
		names = append(names, field.Name)
	}
	return names
}

// Check verifies the schema invariants: every field is named and names are
// unique within the collection.
func (c Collection) Check() error {
	seen := make(map[string]struct{}, len(c.Fields))
	for i, field := range c.Fields {
		if field.Name == "" {
			return fmt.Errorf("schema: collection %q: field %d has no name", c.Name, i)
		}
		if _, dup := seen[field.Name]; dup {
			return fmt.Errorf("schema: collection %q: duplicate field %q", c.Name, field.Name)
		}
		seen[field.Name] = struct{}{}
	}
	return nil
}
