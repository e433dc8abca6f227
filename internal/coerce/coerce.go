// Package coerce holds the loose value coercions shared by the validator and
// the data preparer. Form controls hand values over as strings more often
// than not, so both stages need the same "does this look like a number"
// answer.
package coerce

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number attempts to interpret value as a finite float64. It accepts the
// numeric Go kinds, json.Number, and numeric strings (surrounding whitespace
// ignored). The second result is false for anything else, including NaN and
// infinities.
func Number(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, finite(v)
	case float32:
		return float64(v), finite(float64(v))
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, finite(parsed)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return parsed, finite(parsed)
	}
	return 0, false
}

// Bool interprets value with loose truthiness: nil, false, zero numbers, and
// empty strings are false; everything else is true. The strings "false" and
// "0" are also false, since that is what unchecked HTML controls submit.
func Bool(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		trimmed := strings.TrimSpace(strings.ToLower(v))
		return trimmed != "" && trimmed != "false" && trimmed != "0"
	}
	if number, ok := Number(value); ok {
		return number != 0
	}
	return true
}

// String renders value for substring and pattern checks. Numbers format
// without a trailing ".0" so "25" and 25 check identically.
func String(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprintf("%v", value)
}

// FormatNumber renders a float the way it was written: no exponent, no
// trailing zeros.
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
