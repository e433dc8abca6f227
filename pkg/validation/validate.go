// Package validation checks raw form records against collection schemas. It
// reports violations as human-readable strings rather than errors: an empty
// result means the record is valid, and the caller decides whether a
// non-empty one blocks submission.
package validation

import (
	"fmt"
	"net/url"
	"regexp"

	"github.com/goliatone/go-adminforms/internal/coerce"
	"github.com/goliatone/go-adminforms/pkg/schema"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks data against the supplied schema fields and collects every
// violation; rules never short-circuit each other. A field counts as empty
// only when its key is absent, nil, or the empty string; the number 0 and
// the boolean false are present values.
func Validate(data map[string]any, fields []schema.Field) []string {
	var violations []string

	for _, field := range fields {
		value, exists := data[field.Name]
		if !exists || value == nil || value == "" {
			if field.Required {
				violations = append(violations, field.Name+" is required")
			}
			continue
		}

		switch field.Type {
		case schema.FieldTypeEmail:
			if !emailPattern.MatchString(coerce.String(value)) {
				violations = append(violations, field.Name+" must be a valid email address")
			}
		case schema.FieldTypeURL:
			if !isAbsoluteURL(coerce.String(value)) {
				violations = append(violations, field.Name+" must be a valid URL")
			}
		case schema.FieldTypeNumber:
			violations = append(violations, checkNumber(field, value)...)
		case schema.FieldTypeText:
			if message, ok := checkPattern(field, value); !ok {
				violations = append(violations, message)
			}
		}
	}

	return violations
}

func isAbsoluteURL(raw string) bool {
	parsed, err := url.Parse(raw)
	return err == nil && parsed.IsAbs()
}

func checkNumber(field schema.Field, value any) []string {
	number, ok := coerce.Number(value)
	if !ok {
		return []string{field.Name + " must be a valid number"}
	}

	opts, hasOpts := field.Options.(schema.NumberOptions)
	if !hasOpts {
		return nil
	}

	var violations []string
	if opts.Min != nil && number < *opts.Min {
		violations = append(violations, fmt.Sprintf("%s must be at least %s", field.Name, coerce.FormatNumber(*opts.Min)))
	}
	if opts.Max != nil && number > *opts.Max {
		violations = append(violations, fmt.Sprintf("%s must be at most %s", field.Name, coerce.FormatNumber(*opts.Max)))
	}
	return violations
}

// checkPattern reports ok when the value matches the field's pattern or no
// usable pattern is configured. Invalid pattern expressions disable the check
// rather than failing the record.
func checkPattern(field schema.Field, value any) (string, bool) {
	opts, ok := field.Options.(schema.TextOptions)
	if !ok || opts.Pattern == "" {
		return "", true
	}

	matcher, err := regexp.Compile(opts.Pattern)
	if err != nil {
		return "", true
	}
	if matcher.MatchString(coerce.String(value)) {
		return "", true
	}
	return field.Name + " format is invalid", false
}
