// Package export converts a rendered resume preview into a paginated A4 PDF.
package export

import "fmt"

// Error represents an export failure at any pipeline stage: missing preview
// region, rasterization failure, page assembly or output write failure. It
// always carries the underlying cause when one exists.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("export error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
