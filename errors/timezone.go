// Package errors defines the typed errors surfaced by the tz package.
package errors

import (
	"errors"
	"fmt"
)

// UnrecognizedTimeZone reports input text that matches no fixed-offset form.
// It carries the offending text verbatim for diagnostics.
type UnrecognizedTimeZone struct {
	Input string
}

// NewUnrecognizedTimeZone builds an UnrecognizedTimeZone for the given input.
func NewUnrecognizedTimeZone(input string) *UnrecognizedTimeZone {
	return &UnrecognizedTimeZone{Input: input}
}

// Error formats the failure with the offending text attached.
func (e *UnrecognizedTimeZone) Error() string {
	if e == nil {
		return "unrecognized time zone"
	}
	return fmt.Sprintf("unrecognized time zone: %q", e.Input)
}

// AsUnrecognizedTimeZone extracts an UnrecognizedTimeZone from err, including
// through error wrapping.
func AsUnrecognizedTimeZone(err error) (*UnrecognizedTimeZone, bool) {
	if err == nil {
		return nil, false
	}
	var target *UnrecognizedTimeZone
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
