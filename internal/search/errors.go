package search

import (
	"errors"
	"fmt"
)

// Input rejection reasons.
var (
	// ErrNotNumeric indicates non-integer characters in a numeric field.
	ErrNotNumeric = errors.New("search: input is not numeric")

	// ErrUnsorted indicates a custom list that is not in ascending order.
	ErrUnsorted = errors.New("search: list is not sorted in ascending order")

	// ErrEmptyData indicates a search was requested with no array loaded.
	ErrEmptyData = errors.New("search: no data loaded")

	// ErrSizeRange indicates a requested sample size the value range cannot satisfy.
	ErrSizeRange = errors.New("search: size out of range")
)

// InputError wraps a rejection with the field and raw input that caused it.
type InputError struct {
	Field   string
	Input   string
	Wrapped error
}

func (e *InputError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Wrapped)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Input, e.Wrapped)
}

func (e *InputError) Unwrap() error {
	return e.Wrapped
}

// UserMessage turns a rejection into the text shown to the operator.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsorted):
		return "Please enter a SORTED list! Binary search requires ascending order."
	case errors.Is(err, ErrEmptyData):
		return "Generate or load a list first."
	case errors.Is(err, ErrSizeRange):
		return "Size is outside the allowed range."
	case errors.Is(err, ErrNotNumeric):
		var ie *InputError
		if errors.As(err, &ie) && ie.Field == "target" {
			return "Invalid target: enter a whole number."
		}
		return "Please enter valid numbers separated by commas."
	default:
		return err.Error()
	}
}
