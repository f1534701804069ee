// Package ocr provides optical character recognition for raster images
// extracted from PDF pages.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system and the "ocr" build tag:
//
//	go build -tags ocr
//
// Without the tag a stub is compiled in and every operation reports
// ErrEngineUnavailable, so the rest of the pipeline builds and tests without
// the native dependency. On macOS, install Tesseract via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import "errors"

// ErrEngineUnavailable indicates the recognition engine is not installed,
// not compiled in, or otherwise unusable. It is a configuration error for
// the whole process, distinct from a per-image recognition failure, and is
// checked once before any per-document work proceeds.
var ErrEngineUnavailable = errors.New("ocr engine unavailable")

// Recognizer turns an encoded image into recognized text. It is injected
// into the conversion pipeline rather than reached through package state, so
// tests substitute a fake without touching the engine.
//
// RecognizeImage returns the recognized text trimmed of surrounding
// whitespace; an image with no recognizable text yields an empty string. An
// error matching ErrEngineUnavailable reports a broken engine and is fatal
// to the owning conversion; any other error means this image failed, and
// callers degrade it to an empty caption.
type Recognizer interface {
	RecognizeImage(image []byte) (string, error)
	Close() error
}

// Prober is optionally implemented by recognizers that can report engine
// health up front. The batch scheduler probes it once per run.
type Prober interface {
	Available() error
}
