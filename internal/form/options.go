package form

// Options configures the deriver behaviour.
type Options struct {
	// Labeler turns a field name into a display label. Defaults to
	// DefaultLabeler.
	Labeler func(string) string
}

func defaultOptions() Options {
	return Options{
		Labeler: DefaultLabeler,
	}
}
