// Package profile provides loading of CV profile records from JSON files.
package profile

import "fmt"

// NotFoundError indicates the profile file does not exist. It is detected
// before any processing so nothing is written when it occurs.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

// ParseError indicates the profile file exists but is not a valid record.
type ParseError struct {
	Path  string
	Cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse profile %s: %v", e.Path, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
