package pdfmd

import (
	"fmt"
	"strings"
)

// Warning codes for non-fatal conditions absorbed during conversion.
const (
	// WarnOCRFailed marks a per-image recognition failure, degraded to an
	// empty caption.
	WarnOCRFailed = "ocr-failed"

	// WarnPageSkipped marks a page whose elements could not be extracted.
	WarnPageSkipped = "page-skipped"
)

// Warning describes a non-fatal issue encountered while converting a
// document. Warnings accompany a usable result; fatal conditions are errors
// on the result instead.
type Warning struct {
	// Page is the 1-based page number the warning applies to, or 0 when
	// it is not page-scoped.
	Page int

	// Code identifies the condition, one of the Warn constants.
	Code string

	// Message is a human-readable description.
	Message string
}

// String returns a human-readable form of the warning.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s: %s", w.Page, w.Code, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// FormatWarnings renders a warning list as a single semicolon-separated
// string, convenient for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
