package dates_test

import (
	"testing"

	"github.com/goliatone/go-adminforms/pkg/dates"
)

func TestFormatForInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"rfc3339 with millis", "2023-12-25T10:30:00.000Z", "2023-12-25"},
		{"rfc3339", "2024-02-29T23:59:59Z", "2024-02-29"},
		{"backend space-separated", "2023-12-25 10:30:00.000Z", "2023-12-25"},
		{"bare date", "2023-01-02", "2023-01-02"},
		{"offset normalised to utc", "2023-12-25T23:30:00+02:00", "2023-12-25"},
		{"empty", "", ""},
		{"whitespace", "   ", ""},
		{"garbage", "not a date", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dates.FormatForInput(tc.input); got != tc.want {
				t.Fatalf("FormatForInput(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestFormatForDisplay(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"christmas", "2023-12-25T10:30:00.000Z", "12/25/2023"},
		{"single digit month and day pad", "2023-01-02T00:00:00Z", "01/02/2023"},
		{"empty", "", ""},
		{"garbage", "later", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dates.FormatForDisplay(tc.input); got != tc.want {
				t.Fatalf("FormatForDisplay(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

// Feeding FormatForInput's output back through the parser must land on the
// same calendar day.
func TestFormatForInput_RoundTrip(t *testing.T) {
	inputs := []string{
		"2023-12-25T10:30:00.000Z",
		"2020-02-29T00:00:00Z",
		"1999-01-01 12:00:00",
	}
	for _, input := range inputs {
		day := dates.FormatForInput(input)
		if day == "" {
			t.Fatalf("expected %q to parse", input)
		}
		if again := dates.FormatForInput(day); again != day {
			t.Fatalf("round trip drifted: %q -> %q -> %q", input, day, again)
		}
	}
}
