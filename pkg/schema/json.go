package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// fieldAlias mirrors Field with the options payload left raw so the variant
// can be selected after the field type is known.
type fieldAlias struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Type        FieldType       `json:"type"`
	System      bool            `json:"system,omitempty"`
	Required    bool            `json:"required,omitempty"`
	Presentable bool            `json:"presentable,omitempty"`
	Options     json.RawMessage `json:"options,omitempty"`
}

// UnmarshalJSON decodes the backend's loosely-typed options object into the
// variant matching the declared field type. Options attached to types that
// carry none (bool, date, json, ...) are ignored.
func (f *Field) UnmarshalJSON(data []byte) error {
	var alias fieldAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return fmt.Errorf("schema: decode field: %w", err)
	}

	f.ID = alias.ID
	f.Name = alias.Name
	f.Type = alias.Type
	f.System = alias.System
	f.Required = alias.Required
	f.Presentable = alias.Presentable
	f.Options = nil

	if len(alias.Options) == 0 || bytes.Equal(bytes.TrimSpace(alias.Options), []byte("null")) {
		return nil
	}

	opts, err := decodeOptions(alias.Type, alias.Options)
	if err != nil {
		return fmt.Errorf("schema: decode options for field %q: %w", alias.Name, err)
	}
	f.Options = opts
	return nil
}

func decodeOptions(fieldType FieldType, raw json.RawMessage) (Options, error) {
	switch fieldType.Normalize() {
	case FieldTypeText, FieldTypeEditor:
		var opts TextOptions
		if err := json.Unmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return opts, nil
	case FieldTypeNumber:
		var opts NumberOptions
		if err := json.Unmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return opts, nil
	case FieldTypeSelect:
		var opts SelectOptions
		if err := json.Unmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return opts, nil
	case FieldTypeRelation:
		var opts RelationOptions
		if err := json.Unmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return opts, nil
	case FieldTypeFile:
		var opts FileOptions
		if err := json.Unmarshal(raw, &opts); err != nil {
			return nil, err
		}
		return opts, nil
	}
	return nil, nil
}
