// Package sanitize cleans rich-text values produced by editor fields before
// they reach the backend. It is opt-in: the preparer passes editor values
// through untouched, and callers that accept HTML from untrusted users hang
// this sanitizer into the pipeline.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-adminforms/pkg/schema"
)

var (
	editorPolicyOnce sync.Once
	editorPolicy     *bluemonday.Policy
)

// HTML strips disallowed markup from raw, keeping the formatting tags a
// rich-text editor emits (UGC policy plus inline class attributes).
func HTML(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(policy().Sanitize(trimmed))
}

// EditorFields sanitizes every editor-typed string value in a prepared
// record, in place, and returns the record for chaining. Non-string editor
// values are left alone.
func EditorFields(record map[string]any, fields []schema.Field) map[string]any {
	if len(record) == 0 {
		return record
	}
	for _, field := range fields {
		if field.Type != schema.FieldTypeEditor {
			continue
		}
		if value, ok := record[field.Name].(string); ok {
			record[field.Name] = HTML(value)
		}
	}
	return record
}

func policy() *bluemonday.Policy {
	editorPolicyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").Globally()
		editorPolicy = p
	})
	return editorPolicy
}
