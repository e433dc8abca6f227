// Package openapi derives collection schemas from OpenAPI documents. Teams
// that keep their data contracts as OpenAPI component schemas can feed those
// straight into the form pipeline instead of (or before) introspecting a
// live backend.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-adminforms/pkg/schema"
)

// Collections parses an OpenAPI document and converts every component schema
// of object shape into a collection. Collections are returned sorted by name;
// fields within a collection follow the sorted property names, required
// properties resolved against the parent schema.
func Collections(ctx context.Context, raw []byte) ([]schema.Collection, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if spec.Components == nil || len(spec.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document has no component schemas")
	}

	names := make([]string, 0, len(spec.Components.Schemas))
	for name := range spec.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	collections := make([]schema.Collection, 0, len(names))
	for _, name := range names {
		ref := spec.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		if !isObjectSchema(ref.Value) {
			continue
		}
		collections = append(collections, collectionFromSchema(name, ref.Value))
	}

	if len(collections) == 0 {
		return nil, errors.New("openapi: no object component schemas found")
	}
	return collections, nil
}

// Collection converts a single named component schema.
func Collection(ctx context.Context, raw []byte, name string) (schema.Collection, error) {
	collections, err := Collections(ctx, raw)
	if err != nil {
		return schema.Collection{}, err
	}
	for _, col := range collections {
		if col.Name == name {
			return col, nil
		}
	}
	return schema.Collection{}, fmt.Errorf("openapi: component schema %q not found", name)
}

func isObjectSchema(s *openapi3.Schema) bool {
	if s.Type == nil {
		return len(s.Properties) > 0
	}
	return s.Type.Is(openapi3.TypeObject)
}

func collectionFromSchema(name string, s *openapi3.Schema) schema.Collection {
	requiredSet := make(map[string]struct{}, len(s.Required))
	for _, item := range s.Required {
		requiredSet[item] = struct{}{}
	}

	propNames := make([]string, 0, len(s.Properties))
	for propName := range s.Properties {
		propNames = append(propNames, propName)
	}
	sort.Strings(propNames)

	fields := make([]schema.Field, 0, len(propNames))
	for _, propName := range propNames {
		ref := s.Properties[propName]
		if ref == nil || ref.Value == nil {
			continue
		}
		field := fieldFromSchema(propName, ref.Value)
		_, field.Required = requiredSet[propName]
		fields = append(fields, field)
	}

	return schema.Collection{Name: name, Type: "base", Fields: fields}
}

func fieldFromSchema(name string, s *openapi3.Schema) schema.Field {
	field := schema.Field{Name: name, Type: schema.FieldTypeText}

	switch {
	case typeIs(s, openapi3.TypeBoolean):
		field.Type = schema.FieldTypeBool
	case typeIs(s, openapi3.TypeInteger), typeIs(s, openapi3.TypeNumber):
		field.Type = schema.FieldTypeNumber
		if s.Min != nil || s.Max != nil {
			field.Options = schema.NumberOptions{
				Min: cloneFloat(s.Min),
				Max: cloneFloat(s.Max),
			}
		}
	case typeIs(s, openapi3.TypeArray):
		field = arrayField(name, s)
	case typeIs(s, openapi3.TypeObject), s.Type == nil:
		field.Type = schema.FieldTypeJSON
	default:
		field = stringField(name, s)
	}

	return field
}

func stringField(name string, s *openapi3.Schema) schema.Field {
	field := schema.Field{Name: name}

	if len(s.Enum) > 0 {
		field.Type = schema.FieldTypeSelect
		field.Options = schema.SelectOptions{Values: enumStrings(s.Enum), MaxSelect: 1}
		return field
	}

	switch s.Format {
	case "email", "idn-email":
		field.Type = schema.FieldTypeEmail
	case "uri", "iri", "url":
		field.Type = schema.FieldTypeURL
	case "date", "date-time":
		field.Type = schema.FieldTypeDate
	case "byte", "binary":
		field.Type = schema.FieldTypeFile
		field.Options = schema.FileOptions{MaxSelect: 1}
	case "html", "richtext":
		field.Type = schema.FieldTypeEditor
	default:
		field.Type = schema.FieldTypeText
		if s.MinLength > 0 || s.MaxLength != nil || s.Pattern != "" {
			opts := schema.TextOptions{Pattern: s.Pattern}
			if s.MinLength > 0 {
				opts.Min = intPtr(int(s.MinLength))
			}
			if s.MaxLength != nil {
				opts.Max = intPtr(int(*s.MaxLength))
			}
			field.Options = opts
		}
	}

	return field
}

// arrayField maps enum-item arrays onto multi-value selects and binary-item
// arrays onto multi-value files. Anything else has no form-friendly shape and
// degrades to a json field.
func arrayField(name string, s *openapi3.Schema) schema.Field {
	field := schema.Field{Name: name, Type: schema.FieldTypeJSON}
	if s.Items == nil || s.Items.Value == nil {
		return field
	}
	items := s.Items.Value

	if len(items.Enum) > 0 {
		values := enumStrings(items.Enum)
		maxSelect := len(values)
		if s.MaxItems != nil && int(*s.MaxItems) < maxSelect {
			maxSelect = int(*s.MaxItems)
		}
		field.Type = schema.FieldTypeSelect
		field.Options = schema.SelectOptions{Values: values, MaxSelect: maxSelect}
		return field
	}

	if items.Format == "byte" || items.Format == "binary" {
		maxSelect := 99
		if s.MaxItems != nil {
			maxSelect = int(*s.MaxItems)
		}
		field.Type = schema.FieldTypeFile
		field.Options = schema.FileOptions{MaxSelect: maxSelect}
	}

	return field
}

func enumStrings(enum []any) []string {
	values := make([]string, 0, len(enum))
	for _, item := range enum {
		if str, ok := item.(string); ok {
			values = append(values, str)
		}
	}
	return values
}

func typeIs(s *openapi3.Schema, kind string) bool {
	return s.Type != nil && s.Type.Is(kind)
}

func cloneFloat(value *float64) *float64 {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func intPtr(value int) *int { return &value }
