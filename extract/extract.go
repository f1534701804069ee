package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/elshazlio/pdf-to-markdown-converter/format"
)

// defaultPageHeight is used when a page carries no resolvable MediaBox
// (US Letter height in points).
const defaultPageHeight = 792.0

// Document is an opened PDF ready for page-by-page element extraction.
//
// Two views of the same byte stream back it: a text reader for positioned
// text chunks and a pdfcpu context for embedded image streams and page
// content. Both operate on the in-memory bytes; there is nothing to release
// beyond letting the Document go out of scope, but Close is provided for
// lifecycle symmetry with file-backed readers.
type Document struct {
	text      *pdf.Reader
	ctx       *model.Context
	pageCount int
}

// Open parses PDF bytes and returns a Document. It returns a *ParseError if
// the stream is not a PDF, is encrypted without a usable password, or has a
// structure neither parser can read.
func Open(data []byte) (*Document, error) {
	if format.DetectFromMagic(data) != format.PDF {
		return nil, &ParseError{Reason: "not a PDF byte stream"}
	}

	text, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ParseError{Reason: "unreadable document", Err: err}
	}

	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		return nil, &ParseError{Reason: "invalid document structure", Err: err}
	}

	pageCount := text.NumPage()
	if ctx.PageCount < pageCount {
		pageCount = ctx.PageCount
	}

	return &Document{text: text, ctx: ctx, pageCount: pageCount}, nil
}

// Close releases the document. It is safe to call on a nil Document.
func (d *Document) Close() error { return nil }

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int { return d.pageCount }

// Page represents one extracted page.
type Page struct {
	// Index is the zero-based page index.
	Index int

	// Height is the page height in points, used to convert the PDF's
	// bottom-up coordinates into top-down offsets.
	Height float64

	elements []Element
}

// Elements returns the page's positioned elements in extraction order.
// Text spans and image blocks are not interleaved by position here; callers
// sort by Offset to obtain reading order.
func (p *Page) Elements() []Element { return p.elements }

// Page extracts the elements of the page at the given zero-based index.
// Text extraction failures on a page are degraded to an image-only page
// rather than an error; a page outside the document range is an error.
func (d *Document) Page(index int) (*Page, error) {
	if index < 0 || index >= d.pageCount {
		return nil, fmt.Errorf("page %d out of range [0,%d)", index, d.pageCount)
	}

	p := d.text.Page(index + 1)
	height := pageHeight(p)

	page := &Page{Index: index, Height: height}

	for _, span := range textSpans(p, index, height) {
		page.elements = append(page.elements, span)
	}
	for _, img := range pageImages(d.ctx, index, height) {
		page.elements = append(page.elements, img)
	}

	return page, nil
}

// textSpans extracts grouped text spans from a page. The underlying content
// parser panics on streams it cannot handle; those pages degrade to no text.
func textSpans(p pdf.Page, index int, height float64) (spans []TextSpan) {
	if p.V.IsNull() {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			spans = nil
		}
	}()

	content := p.Content()
	return groupSpans(content.Text, index, height)
}

// pageHeight resolves the page MediaBox height, walking up the page tree for
// inherited boxes.
func pageHeight(p pdf.Page) float64 {
	v := p.V
	for !v.IsNull() {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() >= 4 {
			h := box.Index(3).Float64() - box.Index(1).Float64()
			if h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}
