// Package pdfmd converts PDF documents into structured Markdown, preserving
// native text layout and applying OCR only to embedded raster images.
//
// Basic usage:
//
//	result := pdfmd.FromBytes("report.pdf", pdfBytes).
//	    OutputRoot("output").
//	    WithRecognizer(recognizer).
//	    Convert()
//	if result.Err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Markdown)
//
// For a batch of documents with bounded parallelism:
//
//	report, err := pdfmd.NewBatch().
//	    Concurrency(4).
//	    OutputRoot("output").
//	    WithRecognizer(recognizer).
//	    Run(docs)
//
// Each configuration method returns a new instance, making chains safe to
// fork and reuse. Lower-level building blocks live in the extract, layout,
// markdown, and ocr packages.
package pdfmd

import (
	"fmt"
	"os"

	"github.com/elshazlio/pdf-to-markdown-converter/format"
)

// FromBytes creates a Converter for an in-memory PDF. The name is the
// source filename; it determines the derived document title and the artifact
// directory stem.
func FromBytes(name string, data []byte) *Converter {
	return &Converter{
		name:    name,
		data:    data,
		options: defaultOptions(),
	}
}

// FromFile creates a Converter for a PDF on disk. The file is read eagerly;
// an unreadable path or a non-PDF extension is an error before any parsing
// happens.
func FromFile(path string) (*Converter, error) {
	if format.Detect(path) != format.PDF {
		return nil, fmt.Errorf("%s: not a PDF file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return FromBytes(path, data), nil
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
