package export_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-adminforms/pkg/export"
	"github.com/goliatone/go-adminforms/pkg/form"
)

func sampleDefinition() export.FormDefinition {
	return export.FormDefinition{
		Collection: "articles",
		Fields: []form.FieldConfig{
			{Name: "title", Label: "Title", Type: form.InputText, Required: true, Placeholder: "Enter title"},
			{Name: "tags", Label: "Tags", Type: form.InputSelect, Options: []string{"go", "news"}, Multiple: true},
		},
	}
}

func TestRegistry_Defaults(t *testing.T) {
	registry := export.NewRegistry()

	if diff := cmp.Diff([]string{"json", "yaml"}, registry.List()); diff != "" {
		t.Fatalf("encoder list mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("json") {
		t.Fatal("expected json encoder")
	}
	if _, err := registry.Get("toml"); err == nil {
		t.Fatal("expected unknown encoder error")
	}
}

func TestRegistry_RejectsDuplicates(t *testing.T) {
	registry := export.NewRegistry()
	if err := registry.Register(export.JSONEncoder{}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected nil encoder error")
	}
}

func TestJSONEncoder_RoundTrip(t *testing.T) {
	payload, err := export.JSONEncoder{}.Encode(sampleDefinition())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	var decoded export.FormDefinition
	if err := json.Unmarshal(payload, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(sampleDefinition(), decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestYAMLEncoder(t *testing.T) {
	payload, err := export.YAMLEncoder{}.Encode(sampleDefinition())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	text := string(payload)
	for _, want := range []string{"collection: articles", "name: title", "multiple: true"} {
		if !strings.Contains(text, want) {
			t.Fatalf("yaml output missing %q:\n%s", want, text)
		}
	}
}

func TestEncoderContentTypes(t *testing.T) {
	if got := (export.JSONEncoder{}).ContentType(); got != "application/json" {
		t.Fatalf("json content type = %q", got)
	}
	if got := (export.YAMLEncoder{}).ContentType(); got != "application/yaml" {
		t.Fatalf("yaml content type = %q", got)
	}
}
