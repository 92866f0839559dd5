package dataset

import "fmt"

// InputError is a defect of the input table itself, a missing required
// column or an unreadable file. The pipeline does not continue past it.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return e.Reason
}

func inputErrorf(format string, args ...any) error {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}

// MalformedCoordinateError reports a coordinate cell that does not parse to
// a finite number after decimal separator normalization.
type MalformedCoordinateError struct {
	Row    int
	Column string
	Value  string
}

func (e *MalformedCoordinateError) Error() string {
	return fmt.Sprintf("row %d: column %q value %q is not a numeric coordinate", e.Row, e.Column, e.Value)
}
