package validation_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-adminforms/pkg/schema"
	"github.com/goliatone/go-adminforms/pkg/validation"
)

func floatPtr(v float64) *float64 { return &v }

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		fields []schema.Field
		data   map[string]any
		want   []string
	}{
		{
			name:   "missing required email",
			fields: []schema.Field{{Name: "email", Type: schema.FieldTypeEmail, Required: true}},
			data:   map[string]any{},
			want:   []string{"email is required"},
		},
		{
			name:   "empty string counts as missing",
			fields: []schema.Field{{Name: "title", Type: schema.FieldTypeText, Required: true}},
			data:   map[string]any{"title": ""},
			want:   []string{"title is required"},
		},
		{
			name:   "nil counts as missing",
			fields: []schema.Field{{Name: "title", Type: schema.FieldTypeText, Required: true}},
			data:   map[string]any{"title": nil},
			want:   []string{"title is required"},
		},
		{
			name:   "zero is present",
			fields: []schema.Field{{Name: "count", Type: schema.FieldTypeNumber, Required: true}},
			data:   map[string]any{"count": 0},
			want:   nil,
		},
		{
			name:   "false is present",
			fields: []schema.Field{{Name: "active", Type: schema.FieldTypeBool, Required: true}},
			data:   map[string]any{"active": false},
			want:   nil,
		},
		{
			name:   "malformed email",
			fields: []schema.Field{{Name: "email", Type: schema.FieldTypeEmail}},
			data:   map[string]any{"email": "not-an-email"},
			want:   []string{"email must be a valid email address"},
		},
		{
			name:   "email missing dot after at",
			fields: []schema.Field{{Name: "email", Type: schema.FieldTypeEmail}},
			data:   map[string]any{"email": "user@host"},
			want:   []string{"email must be a valid email address"},
		},
		{
			name:   "valid email",
			fields: []schema.Field{{Name: "email", Type: schema.FieldTypeEmail}},
			data:   map[string]any{"email": "user@example.com"},
			want:   nil,
		},
		{
			name:   "relative url rejected",
			fields: []schema.Field{{Name: "homepage", Type: schema.FieldTypeURL}},
			data:   map[string]any{"homepage": "/about"},
			want:   []string{"homepage must be a valid URL"},
		},
		{
			name:   "absolute url accepted",
			fields: []schema.Field{{Name: "homepage", Type: schema.FieldTypeURL}},
			data:   map[string]any{"homepage": "https://example.com/about"},
			want:   nil,
		},
		{
			name:   "unparsable number",
			fields: []schema.Field{{Name: "age", Type: schema.FieldTypeNumber}},
			data:   map[string]any{"age": "twelve"},
			want:   []string{"age must be a valid number"},
		},
		{
			name:   "number above max",
			fields: []schema.Field{{Name: "age", Type: schema.FieldTypeNumber, Options: schema.NumberOptions{Min: floatPtr(0), Max: floatPtr(120)}}},
			data:   map[string]any{"age": 150},
			want:   []string{"age must be at most 120"},
		},
		{
			name:   "number below min",
			fields: []schema.Field{{Name: "age", Type: schema.FieldTypeNumber, Options: schema.NumberOptions{Min: floatPtr(18)}}},
			data:   map[string]any{"age": "12"},
			want:   []string{"age must be at least 18"},
		},
		{
			name:   "numeric string within bounds",
			fields: []schema.Field{{Name: "age", Type: schema.FieldTypeNumber, Options: schema.NumberOptions{Min: floatPtr(0), Max: floatPtr(120)}}},
			data:   map[string]any{"age": "25"},
			want:   nil,
		},
		{
			name:   "text pattern mismatch",
			fields: []schema.Field{{Name: "slug", Type: schema.FieldTypeText, Options: schema.TextOptions{Pattern: "^[a-z-]+$"}}},
			data:   map[string]any{"slug": "Hello World"},
			want:   []string{"slug format is invalid"},
		},
		{
			name:   "pattern only applies to text fields",
			fields: []schema.Field{{Name: "body", Type: schema.FieldTypeEditor, Options: schema.TextOptions{Pattern: "^[a-z]+$"}}},
			data:   map[string]any{"body": "Hello World"},
			want:   nil,
		},
		{
			name: "all violations collected",
			fields: []schema.Field{
				{Name: "email", Type: schema.FieldTypeEmail, Required: true},
				{Name: "age", Type: schema.FieldTypeNumber, Options: schema.NumberOptions{Max: floatPtr(10)}},
				{Name: "homepage", Type: schema.FieldTypeURL},
			},
			data: map[string]any{"age": 42, "homepage": "nope"},
			want: []string{
				"email is required",
				"age must be at most 10",
				"homepage must be a valid URL",
			},
		},
		{
			name:   "untyped fields only get the required check",
			fields: []schema.Field{{Name: "payload", Type: schema.FieldTypeJSON}},
			data:   map[string]any{"payload": "{definitely not json"},
			want:   nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := validation.Validate(tc.data, tc.fields)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("violations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
