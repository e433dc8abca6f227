// Package export serializes derived form definitions into wire formats
// front-ends and tooling can consume. It deliberately stops at data: no
// HTML, no templates.
package export

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-adminforms/pkg/form"
)

// FormDefinition is the export payload: the collection a form belongs to and
// the ordered field configs to render it.
type FormDefinition struct {
	Collection string             `json:"collection" yaml:"collection"`
	Fields     []form.FieldConfig `json:"fields" yaml:"fields"`
}

// Encoder turns a form definition into bytes of a named wire format.
type Encoder interface {
	Name() string
	ContentType() string
	Encode(def FormDefinition) ([]byte, error)
}

// Registry stores encoders by name, providing discovery and duplication
// safeguards.
type Registry struct {
	mu       sync.RWMutex
	encoders map[string]Encoder
}

// NewRegistry creates a registry pre-populated with the built-in JSON and
// YAML encoders.
func NewRegistry() *Registry {
	r := &Registry{encoders: make(map[string]Encoder)}
	r.MustRegister(JSONEncoder{})
	r.MustRegister(YAMLEncoder{})
	return r
}

// Register adds an encoder by its Name(). Duplicate names return an error.
func (r *Registry) Register(encoder Encoder) error {
	if encoder == nil {
		return fmt.Errorf("export: encoder is required")
	}
	name := encoder.Name()
	if name == "" {
		return fmt.Errorf("export: encoder name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.encoders[name]; exists {
		return fmt.Errorf("export: encoder %q already registered", name)
	}
	r.encoders[name] = encoder
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(encoder Encoder) {
	if err := r.Register(encoder); err != nil {
		panic(err)
	}
}

// Get retrieves an encoder by name.
func (r *Registry) Get(name string) (Encoder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	encoder, ok := r.encoders[name]
	if !ok {
		return nil, fmt.Errorf("export: encoder %q not found", name)
	}
	return encoder, nil
}

// List returns the registered encoder names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.encoders))
	for name := range r.encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether an encoder is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.encoders[name]
	return ok
}
