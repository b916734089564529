// Package rendering maps a profile record to a styled .docx CV.
package rendering

import "fmt"

// RenderError represents a failure composing the document content.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// OutputError represents a failure creating or writing the output file.
type OutputError struct {
	Path  string
	Cause error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output error: failed to write %s: %v", e.Path, e.Cause)
}

func (e *OutputError) Unwrap() error {
	return e.Cause
}
