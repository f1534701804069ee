package pdfmd

import "fmt"

// ArtifactError indicates an extracted image could not be persisted to disk.
// It is fatal for the owning document, since the Markdown would otherwise
// reference a missing file, but never for sibling documents in a batch.
type ArtifactError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ArtifactError) Error() string {
	return fmt.Sprintf("write artifact %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *ArtifactError) Unwrap() error { return e.Err }
