package form

import "testing"

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"":        "",
		"email":   "Email",
		"maxAge":  "MaxAge",
		"created": "Created",
	}
	for input, want := range cases {
		if got := DefaultLabeler(input); got != want {
			t.Errorf("DefaultLabeler(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestHumanizeLabeler(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"email":       "Email",
		"created_by":  "Created By",
		"maxAge":      "Max Age",
		"author-name": "Author Name",
		"APIKey2":     "Apikey 2",
		"line2notes":  "Line 2 Notes",
		"__weird__":   "Weird",
	}
	for input, want := range cases {
		if got := HumanizeLabeler(input); got != want {
			t.Errorf("HumanizeLabeler(%q) = %q, want %q", input, got, want)
		}
	}
}
