// Package orchestrator coordinates the full pipeline: fetch a collection
// schema, derive form fields, validate a collected record, prepare it, and
// hand it to the submission sink. Every stage stays individually usable; the
// orchestrator only sequences them and applies sensible defaults.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-adminforms/pkg/backend"
	"github.com/goliatone/go-adminforms/pkg/export"
	"github.com/goliatone/go-adminforms/pkg/form"
	"github.com/goliatone/go-adminforms/pkg/prepare"
	"github.com/goliatone/go-adminforms/pkg/sanitize"
	"github.com/goliatone/go-adminforms/pkg/schema"
	"github.com/goliatone/go-adminforms/pkg/validation"
)

// SchemaSource supplies the ordered field descriptors for a named
// collection. *backend.Client and *backend.Memory both satisfy it.
type SchemaSource interface {
	Schema(ctx context.Context, collection string) ([]schema.Field, error)
}

// SubmissionSink persists prepared records. Its response shape is opaque to
// the pipeline.
type SubmissionSink interface {
	Create(ctx context.Context, collection string, record map[string]any) (backend.Record, error)
	Update(ctx context.Context, collection, id string, record map[string]any) (backend.Record, error)
}

// ValidationError reports the violations that blocked a submission.
type ValidationError struct {
	Collection string
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("orchestrator: record for %q failed validation: %s",
		e.Collection, strings.Join(e.Violations, "; "))
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithSchemaSource injects the schema source.
func WithSchemaSource(source SchemaSource) Option {
	return func(o *Orchestrator) {
		o.source = source
	}
}

// WithSubmissionSink injects the submission sink.
func WithSubmissionSink(sink SubmissionSink) Option {
	return func(o *Orchestrator) {
		o.sink = sink
	}
}

// WithBackend wires one value as both schema source and submission sink.
func WithBackend(b interface {
	SchemaSource
	SubmissionSink
}) Option {
	return func(o *Orchestrator) {
		o.source = b
		o.sink = b
	}
}

// WithDeriver injects a custom field config deriver.
func WithDeriver(deriver form.Deriver) Option {
	return func(o *Orchestrator) {
		o.deriver = deriver
	}
}

// WithOverrides installs caller customisations merged on top of every
// derived config.
func WithOverrides(overrides form.Overrides) Option {
	return func(o *Orchestrator) {
		o.overrides = overrides
	}
}

// WithEditorSanitizer strips unsafe markup from editor values after
// preparation. Off by default: the preparer's contract is to pass editor
// values through unchanged.
func WithEditorSanitizer() Option {
	return func(o *Orchestrator) {
		o.sanitizeEditors = true
	}
}

// WithLogger attaches a structured logger. Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(o *Orchestrator) {
		if log != nil {
			o.log = log
		}
	}
}

// Orchestrator sequences schema fetch, derivation, validation, preparation,
// and submission for one backend.
type Orchestrator struct {
	source          SchemaSource
	sink            SubmissionSink
	deriver         form.Deriver
	overrides       form.Overrides
	sanitizeEditors bool
	log             *zap.Logger
}

// New constructs an Orchestrator applying any provided options. The deriver
// defaults to the built-in implementation; source and sink have no default
// and their operations fail until configured.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		log: zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(o)
		}
	}
	if o.deriver == nil {
		o.deriver = form.NewDeriver()
	}
	return o
}

// Fields fetches the collection schema and derives its form fields.
func (o *Orchestrator) Fields(ctx context.Context, collection string) ([]form.FieldConfig, error) {
	fields, err := o.schemaFor(ctx, collection)
	if err != nil {
		return nil, err
	}
	return o.deriver.Fields(fields, o.overrides), nil
}

// Definition bundles the derived fields into an exportable form definition.
func (o *Orchestrator) Definition(ctx context.Context, collection string) (export.FormDefinition, error) {
	configs, err := o.Fields(ctx, collection)
	if err != nil {
		return export.FormDefinition{}, err
	}
	return export.FormDefinition{Collection: collection, Fields: configs}, nil
}

// Check validates data against the collection schema and returns the
// violations. An empty result means the record may be submitted.
func (o *Orchestrator) Check(ctx context.Context, collection string, data map[string]any) ([]string, error) {
	fields, err := o.schemaFor(ctx, collection)
	if err != nil {
		return nil, err
	}
	return validation.Validate(data, fields), nil
}

// Create validates, prepares, and submits a new record. Validation failures
// surface as a *ValidationError; nothing reaches the sink in that case.
func (o *Orchestrator) Create(ctx context.Context, collection string, data map[string]any) (backend.Record, error) {
	prepared, err := o.prepareChecked(ctx, collection, data)
	if err != nil {
		return nil, err
	}
	if o.sink == nil {
		return nil, errors.New("orchestrator: submission sink is not configured")
	}

	record, err := o.sink.Create(ctx, collection, prepared)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: create record in %q: %w", collection, err)
	}
	o.log.Debug("record created", zap.String("collection", collection), zap.String("id", record.ID()))
	return record, nil
}

// Update validates, prepares, and submits changes to an existing record.
func (o *Orchestrator) Update(ctx context.Context, collection, id string, data map[string]any) (backend.Record, error) {
	prepared, err := o.prepareChecked(ctx, collection, data)
	if err != nil {
		return nil, err
	}
	if o.sink == nil {
		return nil, errors.New("orchestrator: submission sink is not configured")
	}

	record, err := o.sink.Update(ctx, collection, id, prepared)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: update record %q in %q: %w", id, collection, err)
	}
	o.log.Debug("record updated", zap.String("collection", collection), zap.String("id", id))
	return record, nil
}

func (o *Orchestrator) prepareChecked(ctx context.Context, collection string, data map[string]any) (map[string]any, error) {
	fields, err := o.schemaFor(ctx, collection)
	if err != nil {
		return nil, err
	}

	if violations := validation.Validate(data, fields); len(violations) > 0 {
		return nil, &ValidationError{Collection: collection, Violations: violations}
	}

	prepared := prepare.Prepare(data, fields)
	if o.sanitizeEditors {
		prepared = sanitize.EditorFields(prepared, fields)
	}
	return prepared, nil
}

func (o *Orchestrator) schemaFor(ctx context.Context, collection string) ([]schema.Field, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if collection == "" {
		return nil, errors.New("orchestrator: collection name is required")
	}
	if o.source == nil {
		return nil, errors.New("orchestrator: schema source is not configured")
	}

	fields, err := o.source.Schema(ctx, collection)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: fetch schema for %q: %w", collection, err)
	}
	return fields, nil
}
