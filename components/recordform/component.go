// Package recordform exposes the form pipeline over HTTP: one endpoint
// serving derived form definitions and two accepting record submissions. It
// serves data for front-ends to render, never markup.
package recordform

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Component bundles the recordform handlers, their configuration, and
// routing helpers into an extraction-friendly unit.
type Component struct {
	opts Options
}

// New constructs a component with default options plus any overrides.
func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	return c.opts
}

// Routes builds the chi router for this component:
//
//	GET  /{collection}/form            derived form definition (?format=json|yaml)
//	POST /{collection}/records         validate + submit a new record
//	PATCH /{collection}/records/{id}   validate + submit record changes
func (c *Component) Routes() (chi.Router, error) {
	if c.opts.Pipeline == nil {
		return nil, errors.New("recordform: pipeline is required")
	}

	h := handler{opts: c.opts}
	r := chi.NewRouter()
	r.Get("/{collection}/form", h.handleForm)
	r.Post("/{collection}/records", h.handleCreate)
	r.Patch("/{collection}/records/{id}", h.handleUpdate)
	return r, nil
}

// Mount registers the component under basePath on parent.
func (c *Component) Mount(parent chi.Router, basePath string) error {
	if parent == nil {
		return errors.New("recordform: parent router is required")
	}
	routes, err := c.Routes()
	if err != nil {
		return err
	}
	if basePath == "" {
		basePath = "/"
	}
	parent.Mount(basePath, routes)
	return nil
}

// Handler returns the component as a net/http handler, for callers not using
// chi in their outer stack.
func (c *Component) Handler() (http.Handler, error) {
	return c.Routes()
}
