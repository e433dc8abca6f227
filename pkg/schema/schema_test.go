package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-adminforms/pkg/schema"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestCollection_DecodeJSON(t *testing.T) {
	payload := `{
		"id": "col_articles",
		"name": "articles",
		"type": "base",
		"schema": [
			{"id": "f1", "name": "title", "type": "text", "required": true,
			 "options": {"min": 3, "max": 64, "pattern": "^[A-Za-z ]+$"}},
			{"id": "f2", "name": "views", "type": "number",
			 "options": {"min": 0, "max": 1000000}},
			{"id": "f3", "name": "tags", "type": "select", "presentable": true,
			 "options": {"values": ["go", "news"], "maxSelect": 2}},
			{"id": "f4", "name": "author", "type": "relation",
			 "options": {"collectionId": "col_users", "maxSelect": 1}},
			{"id": "f5", "name": "attachment", "type": "file",
			 "options": {"maxSelect": 1, "mimeTypes": ["application/pdf"]}},
			{"id": "f6", "name": "published", "type": "bool"},
			{"id": "f7", "name": "created", "type": "date", "system": true}
		]
	}`

	var col schema.Collection
	if err := json.Unmarshal([]byte(payload), &col); err != nil {
		t.Fatalf("decode collection: %v", err)
	}

	want := schema.Collection{
		ID:   "col_articles",
		Name: "articles",
		Type: "base",
		Fields: []schema.Field{
			{ID: "f1", Name: "title", Type: schema.FieldTypeText, Required: true, Options: schema.TextOptions{Min: intPtr(3), Max: intPtr(64), Pattern: "^[A-Za-z ]+$"}},
			{ID: "f2", Name: "views", Type: schema.FieldTypeNumber, Options: schema.NumberOptions{Min: floatPtr(0), Max: floatPtr(1000000)}},
			{ID: "f3", Name: "tags", Type: schema.FieldTypeSelect, Presentable: true, Options: schema.SelectOptions{Values: []string{"go", "news"}, MaxSelect: 2}},
			{ID: "f4", Name: "author", Type: schema.FieldTypeRelation, Options: schema.RelationOptions{CollectionID: "col_users", MaxSelect: 1}},
			{ID: "f5", Name: "attachment", Type: schema.FieldTypeFile, Options: schema.FileOptions{MaxSelect: 1, MimeTypes: []string{"application/pdf"}}},
			{ID: "f6", Name: "published", Type: schema.FieldTypeBool},
			{ID: "f7", Name: "created", Type: schema.FieldTypeDate, System: true},
		},
	}
	if diff := cmp.Diff(want, col); diff != "" {
		t.Fatalf("collection mismatch (-want +got):\n%s", diff)
	}

	if err := col.Check(); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestField_DecodeUnknownTypeOptions(t *testing.T) {
	payload := `{"name": "location", "type": "geoPoint", "options": {"min": 1}}`

	var field schema.Field
	if err := json.Unmarshal([]byte(payload), &field); err != nil {
		t.Fatalf("decode field: %v", err)
	}

	// Unknown types normalise to text, so the options bag decodes as text
	// constraints.
	opts, ok := field.Options.(schema.TextOptions)
	if !ok {
		t.Fatalf("expected TextOptions, got %T", field.Options)
	}
	if opts.Min == nil || *opts.Min != 1 {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestFieldType_Normalize(t *testing.T) {
	if got := schema.FieldType("geoPoint").Normalize(); got != schema.FieldTypeText {
		t.Fatalf("expected text, got %q", got)
	}
	if got := schema.FieldTypeRelation.Normalize(); got != schema.FieldTypeRelation {
		t.Fatalf("expected relation, got %q", got)
	}
}

func TestField_Multiple(t *testing.T) {
	cases := []struct {
		name  string
		field schema.Field
		want  bool
	}{
		{"multi select", schema.Field{Type: schema.FieldTypeSelect, Options: schema.SelectOptions{MaxSelect: 3}}, true},
		{"single select", schema.Field{Type: schema.FieldTypeSelect, Options: schema.SelectOptions{MaxSelect: 1}}, false},
		{"no options", schema.Field{Type: schema.FieldTypeSelect}, false},
		{"multi relation", schema.Field{Type: schema.FieldTypeRelation, Options: schema.RelationOptions{MaxSelect: 2}}, true},
		{"multi file", schema.Field{Type: schema.FieldTypeFile, Options: schema.FileOptions{MaxSelect: 5}}, true},
		{"text never multiple", schema.Field{Type: schema.FieldTypeText, Options: schema.TextOptions{}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.field.Multiple(); got != tc.want {
				t.Fatalf("Multiple() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCollection_Check(t *testing.T) {
	col := schema.Collection{
		Name: "articles",
		Fields: []schema.Field{
			{Name: "title", Type: schema.FieldTypeText},
			{Name: "title", Type: schema.FieldTypeEditor},
		},
	}
	if err := col.Check(); err == nil {
		t.Fatal("expected duplicate field error")
	}

	col.Fields[1].Name = ""
	if err := col.Check(); err == nil {
		t.Fatal("expected unnamed field error")
	}
}
