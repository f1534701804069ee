package pdfmd

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/elshazlio/pdf-to-markdown-converter/extract"
	"github.com/elshazlio/pdf-to-markdown-converter/layout"
	"github.com/elshazlio/pdf-to-markdown-converter/markdown"
	"github.com/elshazlio/pdf-to-markdown-converter/ocr"
)

// Artifact is an image extracted from the document and persisted to disk.
type Artifact struct {
	// Page is the zero-based page index the image came from.
	Page int

	// Sequence is the 1-based index of the image on its page.
	Sequence int

	// RelativePath locates the saved image relative to the output root,
	// using forward slashes; Markdown image references use this path.
	RelativePath string

	// Text is the recognized caption, possibly empty.
	Text string
}

// Result is the outcome of converting one document. Markdown and Err are
// mutually exclusive; Artifacts may accompany Err when the failure happened
// after some images were already persisted.
type Result struct {
	SourceName string
	Markdown   string
	Artifacts  []Artifact
	Warnings   []Warning
	Err        error
}

// Succeeded reports whether the conversion produced usable Markdown.
func (r Result) Succeeded() bool { return r.Err == nil }

// Converter converts a single PDF document to Markdown. Each configuration
// method returns a new instance, so chains are safe to fork and reuse.
type Converter struct {
	name       string
	data       []byte
	recognizer ocr.Recognizer
	options    ConvertOptions
}

// clone creates a copy of the Converter with independent options.
func (c *Converter) clone() *Converter {
	return &Converter{
		name:       c.name,
		data:       c.data,
		recognizer: c.recognizer,
		options:    c.options.clone(),
	}
}

// WithRecognizer sets the OCR capability used for image captions. Without
// one, images are still extracted and referenced but carry no captions.
func (c *Converter) WithRecognizer(r ocr.Recognizer) *Converter {
	next := c.clone()
	next.recognizer = r
	return next
}

// OutputRoot sets the directory under which the document's artifact
// subdirectory is created. Default is "output".
func (c *Converter) OutputRoot(dir string) *Converter {
	next := c.clone()
	next.options.outputRoot = dir
	return next
}

// Title overrides the document title derived from the source filename.
func (c *Converter) Title(title string) *Converter {
	next := c.clone()
	next.options.title = title
	return next
}

// HeadingConfig overrides the heading classification thresholds.
func (c *Converter) HeadingConfig(config layout.Config) *Converter {
	next := c.clone()
	next.options.headingConfig = config
	return next
}

// MarkdownOptions overrides the output framing (page headings, caption
// prefix, end marker).
func (c *Converter) MarkdownOptions(opts markdown.Options) *Converter {
	next := c.clone()
	next.options.markdownOptions = opts
	return next
}

// Convert runs the conversion: extraction, per-page classification and OCR,
// artifact persistence, and Markdown assembly. It never panics past its own
// boundary; every failure is captured in the Result so batch callers can
// continue with sibling documents.
func (c *Converter) Convert() Result {
	res := Result{SourceName: c.name}

	doc, err := extract.Open(c.data)
	if err != nil {
		res.Err = err
		return res
	}
	defer doc.Close()

	stem := markdown.Stem(c.name)
	if stem == "" || stem == "." {
		stem = "document"
	}
	outDir := filepath.Join(c.options.outputRoot, stem)

	mdOpts := c.options.markdownOptions
	if c.options.title != "" {
		mdOpts.Title = c.options.title
	} else if mdOpts.Title == "" {
		mdOpts.Title = markdown.TitleFromName(c.name)
	}

	classifier := layout.NewClassifierWithConfig(c.options.headingConfig)
	writer := markdown.NewWriter(mdOpts)

	for i := 0; i < doc.PageCount(); i++ {
		page, err := doc.Page(i)
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{
				Page: i + 1, Code: WarnPageSkipped, Message: err.Error(),
			})
			writer.WritePage(i+1, nil)
			continue
		}

		blocks, err := c.pageBlocks(page, classifier, stem, outDir, &res)
		if err != nil {
			res.Err = err
			res.Markdown = ""
			return res
		}
		writer.WritePage(i+1, blocks)
	}

	res.Markdown = writer.String()
	return res
}

// pageBlocks turns one page's elements into renderable blocks, persisting
// each image artifact before the block referencing it exists. An artifact
// write failure aborts the document.
func (c *Converter) pageBlocks(page *extract.Page, classifier *layout.Classifier, stem, outDir string, res *Result) ([]markdown.Block, error) {
	elements := page.Elements()
	blocks := make([]markdown.Block, 0, len(elements))
	for _, el := range elements {
		switch el := el.(type) {
		case extract.TextSpan:
			blocks = append(blocks, markdown.TextBlock{
				Off:   el.Top,
				Text:  el.Content,
				Level: classifier.Classify(el.Content),
			})

		case extract.ImageBlock:
			name := fmt.Sprintf("image_p%d_%d.%s", page.Index+1, el.Sequence, el.FileType)
			diskPath := filepath.Join(outDir, name)
			if err := writeArtifact(diskPath, el.Data); err != nil {
				return nil, &ArtifactError{Path: diskPath, Err: err}
			}

			rel := path.Join(stem, name)
			caption, err := c.recognize(el.Data, page.Index+1, res)
			if err != nil {
				return nil, err
			}
			res.Artifacts = append(res.Artifacts, Artifact{
				Page:         page.Index,
				Sequence:     el.Sequence,
				RelativePath: rel,
				Text:         caption,
			})
			blocks = append(blocks, markdown.ImageRef{
				Off:     el.Top,
				Path:    rel,
				Caption: caption,
			})
		}
	}
	return blocks, nil
}

// recognize runs OCR on one image. An error matching
// ocr.ErrEngineUnavailable is a configuration failure and aborts the
// document; any other failure is per-image and degrades to an empty caption
// plus a warning, so image extraction is never blocked by recognition.
func (c *Converter) recognize(image []byte, pageNum int, res *Result) (string, error) {
	if c.recognizer == nil {
		return "", nil
	}
	text, err := c.recognizer.RecognizeImage(image)
	if err != nil {
		if errors.Is(err, ocr.ErrEngineUnavailable) {
			return "", err
		}
		res.Warnings = append(res.Warnings, Warning{
			Page: pageNum, Code: WarnOCRFailed, Message: err.Error(),
		})
		return "", nil
	}
	return strings.TrimSpace(text), nil
}

// writeArtifact persists one image, creating the document's directory on
// demand.
func writeArtifact(diskPath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(diskPath, data, 0o644)
}
