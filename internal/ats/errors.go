// Package ats provides a keyword-overlap compatibility scorer between a
// resume document and a pasted job description.
package ats

import "fmt"

// Error represents an unexpected internal failure during scoring. It is not
// used for empty job text (a caller-side precondition) or for job text that
// yields no candidate keywords (the neutral-score path).
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scoring error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("scoring error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
