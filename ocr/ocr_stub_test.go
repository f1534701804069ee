//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestNewReturnsError(t *testing.T) {
	client, err := New()
	if err == nil {
		t.Error("Expected error from New() when OCR is disabled")
	}
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
	if !errors.Is(err, ErrEngineUnavailable) {
		t.Errorf("Expected error to match ErrEngineUnavailable, got: %v", err)
	}
	if client != nil {
		t.Error("Expected nil client when OCR is disabled")
	}
}

func TestCloseOnNilClient(t *testing.T) {
	var client *Client
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client should not error: %v", err)
	}
}

func TestAvailableReportsUnavailable(t *testing.T) {
	var client *Client
	err := client.Available()
	if !errors.Is(err, ErrEngineUnavailable) {
		t.Errorf("Expected ErrEngineUnavailable, got: %v", err)
	}
}

func TestRecognizeImageReturnsError(t *testing.T) {
	var client *Client
	text, err := client.RecognizeImage([]byte{0x89, 0x50, 0x4E, 0x47})
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
	if text != "" {
		t.Errorf("Expected empty text, got: %q", text)
	}
}

func TestSetPageSegModeReturnsError(t *testing.T) {
	var client *Client
	if err := client.SetPageSegMode(PSM_AUTO); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("Expected ErrOCRNotEnabled, got: %v", err)
	}
}

func TestStubSatisfiesRecognizer(t *testing.T) {
	var _ Recognizer = (*Client)(nil)
	var _ Prober = (*Client)(nil)
}
