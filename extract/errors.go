package extract

import "fmt"

// ParseError indicates the byte stream could not be opened as a PDF: it is
// malformed, encrypted without a usable password, or not a PDF at all. The
// error is scoped to a single document; batch callers capture it into that
// document's result and continue with siblings.
type ParseError struct {
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse PDF: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse PDF: %s", e.Reason)
}

// Unwrap returns the underlying parser error, if any.
func (e *ParseError) Unwrap() error { return e.Err }
