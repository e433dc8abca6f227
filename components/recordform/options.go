package recordform

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-adminforms/pkg/export"
	"github.com/goliatone/go-adminforms/pkg/orchestrator"
)

const defaultFormat = "json"

// Options configures the recordform component.
type Options struct {
	// Pipeline handles schema fetch, validation, preparation, and
	// submission. Required.
	Pipeline *orchestrator.Orchestrator

	// Encoders resolves the ?format= query parameter on the form endpoint.
	// Defaults to the built-in JSON and YAML encoders.
	Encoders *export.Registry

	// DefaultFormat is used when the form endpoint receives no ?format=.
	DefaultFormat string

	// Logger receives request-level diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
}

// OptionFn mutates Options during construction.
type OptionFn func(*Options)

// DefaultOptions returns the baseline configuration.
func DefaultOptions() Options {
	return Options{
		Encoders:      export.NewRegistry(),
		DefaultFormat: defaultFormat,
		Logger:        zap.NewNop(),
	}
}

// NewOptions applies fns on top of the defaults.
func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.Encoders == nil {
		opts.Encoders = export.NewRegistry()
	}
	if opts.DefaultFormat == "" {
		opts.DefaultFormat = defaultFormat
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

// WithPipeline wires the orchestrator the handlers delegate to.
func WithPipeline(pipeline *orchestrator.Orchestrator) OptionFn {
	return func(o *Options) {
		o.Pipeline = pipeline
	}
}

// WithEncoders replaces the export encoder registry.
func WithEncoders(registry *export.Registry) OptionFn {
	return func(o *Options) {
		o.Encoders = registry
	}
}

// WithDefaultFormat changes the fallback export format.
func WithDefaultFormat(format string) OptionFn {
	return func(o *Options) {
		o.DefaultFormat = format
	}
}

// WithLogger attaches a structured logger.
func WithLogger(log *zap.Logger) OptionFn {
	return func(o *Options) {
		o.Logger = log
	}
}
