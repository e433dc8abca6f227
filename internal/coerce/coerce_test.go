package coerce_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/goliatone/go-adminforms/internal/coerce"
)

func TestNumber(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  float64
		ok    bool
	}{
		{name: "float64", value: 3.5, want: 3.5, ok: true},
		{name: "int", value: 42, want: 42, ok: true},
		{name: "uint16", value: uint16(7), want: 7, ok: true},
		{name: "json number", value: json.Number("12.25"), want: 12.25, ok: true},
		{name: "string", value: "25", want: 25, ok: true},
		{name: "padded string", value: "  -1.5 ", want: -1.5, ok: true},
		{name: "empty string", value: "", ok: false},
		{name: "word", value: "abc", ok: false},
		{name: "nil", value: nil, ok: false},
		{name: "bool", value: true, ok: false},
		{name: "nan", value: math.NaN(), ok: false},
		{name: "inf string", value: "Inf", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := coerce.Number(tc.value)
			if ok != tc.ok {
				t.Fatalf("Number(%v) ok = %v, want %v", tc.value, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("Number(%v) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestBool(t *testing.T) {
	truthy := []any{true, 1, -1, "yes", "true", " on ", 0.5, []string{"x"}}
	for _, value := range truthy {
		if !coerce.Bool(value) {
			t.Errorf("Bool(%v) = false, want true", value)
		}
	}

	falsy := []any{nil, false, 0, 0.0, "", "false", "FALSE", "0", " false "}
	for _, value := range falsy {
		if coerce.Bool(value) {
			t.Errorf("Bool(%v) = true, want false", value)
		}
	}
}

func TestString(t *testing.T) {
	if got := coerce.String(25.0); got != "25" {
		t.Fatalf("String(25.0) = %q, want %q", got, "25")
	}
	if got := coerce.String(nil); got != "" {
		t.Fatalf("String(nil) = %q, want empty", got)
	}
	if got := coerce.String("abc"); got != "abc" {
		t.Fatalf("String(abc) = %q", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		25:      "25",
		2.5:     "2.5",
		-0.125:  "-0.125",
		1000000: "1000000",
		0:       "0",
	}
	for value, want := range cases {
		if got := coerce.FormatNumber(value); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", value, got, want)
		}
	}
}
