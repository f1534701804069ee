package pdfmd

import (
	"github.com/elshazlio/pdf-to-markdown-converter/layout"
	"github.com/elshazlio/pdf-to-markdown-converter/markdown"
)

// DefaultOutputRoot is the directory artifacts land in when none is
// configured.
const DefaultOutputRoot = "output"

// ConvertOptions holds configuration for a single document conversion.
type ConvertOptions struct {
	// outputRoot is the directory under which the per-document artifact
	// subdirectory is created.
	outputRoot string

	// title overrides the document title derived from the source name.
	title string

	// headingConfig holds the heading classification thresholds.
	headingConfig layout.Config

	// markdownOptions controls the output framing.
	markdownOptions markdown.Options
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		outputRoot:      DefaultOutputRoot,
		headingConfig:   layout.DefaultConfig(),
		markdownOptions: markdown.DefaultOptions(),
	}
}

// clone creates a copy of ConvertOptions. All fields are value types, so a
// shallow copy is a deep copy; the method exists to keep chain methods
// returning independent instances.
func (o ConvertOptions) clone() ConvertOptions {
	return o
}
