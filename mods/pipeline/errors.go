package pipeline

import "fmt"

// EmptyResultError reports that a filter or feature extraction produced zero
// usable rows for a requested layer. For optional layers it is recovered by
// skipping the layer; the rest of the scene still composes.
type EmptyResultError struct {
	What string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("no usable rows for %s", e.What)
}

// ConfigurationError reports an invalid visualization request, for example a
// time-series layer without a date column.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

func configErrorf(format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
