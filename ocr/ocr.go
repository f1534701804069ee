//go:build ocr

package ocr

import (
	"fmt"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for OCR operations. One Client is shared by all
// workers of a batch; the underlying engine handle is not safe for
// concurrent use, so calls are serialized internally.
type Client struct {
	mu     sync.Mutex
	client *gosseract.Client
}

// New creates a new OCR client. The client should be closed when no longer
// needed to release engine resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources. It is safe to call on a nil client.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Available reports whether the installed engine is usable, by asking it for
// its trained language data. A missing or broken Tesseract installation
// surfaces here once, before any image is submitted.
func (c *Client) Available() error {
	langs, err := gosseract.GetAvailableLanguages()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	if len(langs) == 0 {
		return fmt.Errorf("%w: no trained language data found", ErrEngineUnavailable)
	}
	return nil
}

// RecognizeImage performs OCR on encoded image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed; text
// that is all whitespace comes back empty.
func (c *Client) RecognizeImage(image []byte) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SetLanguages sets the language(s) used for recognition, e.g. "eng", "deu".
// Default is English.
func (c *Client) SetLanguages(langs ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client.SetLanguage(langs...)
}

// SetPageSegMode sets the page segmentation mode, which controls how the
// engine analyzes image layout. See gosseract.PageSegMode constants.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client.SetPageSegMode(mode)
}
