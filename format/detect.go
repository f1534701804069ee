// Package format provides input format detection for the conversion pipeline.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a recognized input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	default:
		return ""
	}
}

// Detect determines the format from a filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == ".pdf" {
		return PDF
	}
	return Unknown
}

// DetectFromMagic checks leading magic bytes to determine the format.
// This is more reliable than extension-based detection: uploaded byte
// streams frequently arrive with misleading or missing names.
func DetectFromMagic(data []byte) Format {
	if len(data) < 5 {
		return Unknown
	}

	// PDF magic: %PDF-
	if data[0] == '%' && data[1] == 'P' && data[2] == 'D' && data[3] == 'F' && data[4] == '-' {
		return PDF
	}

	return Unknown
}
