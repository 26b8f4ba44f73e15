package finder

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMode     = errors.New("invalid match mode")
	ErrPatternRequired = errors.New("pattern is required")
	ErrInvalidPattern  = errors.New("invalid pattern")
	ErrNotADirectory   = errors.New("not a directory")
)

// InvalidModeError is returned when a match mode is missing or unrecognized.
type InvalidModeError struct {
	Value string
}

func (e *InvalidModeError) Error() string {
	if e.Value == "" {
		return "no match mode given: pick 'all' or 'any'"
	}
	return fmt.Sprintf("unknown match mode %q: pick 'all' or 'any'", e.Value)
}

func (e *InvalidModeError) Unwrap() error {
	return ErrInvalidMode
}

// PatternError reports a glob that failed to compile.
type PatternError struct {
	Pattern string
	Cause   error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%v %q: %v", ErrInvalidPattern, e.Pattern, e.Cause)
}

func (e *PatternError) Unwrap() []error {
	return []error{ErrInvalidPattern, e.Cause}
}
