// Package markdown serializes classified page elements into Markdown in
// reading order.
//
// Reading order is approximated by vertical position alone: each page's
// elements are stable-sorted by their top offset, so ties keep extraction
// order and the output is byte-stable for a given element list. Horizontal
// position is ignored; multi-column pages interleave their columns, a known
// limitation of the policy rather than a bug.
package markdown

import (
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/elshazlio/pdf-to-markdown-converter/layout"
)

// Options controls the document framing around the assembled pages.
type Options struct {
	// Title is the document's top-level title line. Empty suppresses it.
	Title string

	// PageHeadings emits a "## Page N" heading before each page.
	PageHeadings bool

	// CaptionPrefix introduces recognized image text. The caption line is
	// suppressed entirely when the recognized text is empty.
	CaptionPrefix string

	// EndMarker is the final line of the document.
	EndMarker string
}

// DefaultOptions returns the standard output framing.
func DefaultOptions() Options {
	return Options{
		PageHeadings:  true,
		CaptionPrefix: "*Image text (OCR):*",
		EndMarker:     "*End of document*",
	}
}

// Block is one renderable element of a page, positioned by its top offset.
type Block interface {
	Offset() float64
}

// TextBlock is a classified text span ready for emission.
type TextBlock struct {
	Off   float64
	Text  string
	Level layout.HeadingLevel
}

// Offset implements Block.
func (b TextBlock) Offset() float64 { return b.Off }

// ImageRef is a persisted image artifact with its recognized caption.
type ImageRef struct {
	Off     float64
	Path    string
	Caption string
}

// Offset implements Block.
func (r ImageRef) Offset() float64 { return r.Off }

// Writer assembles a Markdown document page by page.
type Writer struct {
	opts  Options
	body  strings.Builder
	pages int
}

// NewWriter creates a Writer. The title line, when configured, is emitted
// before any page content.
func NewWriter(opts Options) *Writer {
	w := &Writer{opts: opts}
	if opts.Title != "" {
		w.body.WriteString("# " + collapseSpace(opts.Title) + "\n\n")
	}
	return w
}

// WritePage emits one page: a stable sort of its blocks by vertical offset,
// a page heading, then each block as a heading, paragraph, or image
// reference. The page number is 1-based.
func (w *Writer) WritePage(number int, blocks []Block) {
	if w.pages > 0 {
		w.body.WriteString("---\n\n")
	}
	w.pages++

	if w.opts.PageHeadings {
		w.body.WriteString("## Page " + strconv.Itoa(number) + "\n\n")
	}

	sorted := make([]Block, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset() < sorted[j].Offset()
	})

	for _, b := range sorted {
		switch b := b.(type) {
		case TextBlock:
			w.writeText(b)
		case ImageRef:
			w.writeImage(b)
		}
	}
}

// String returns the assembled document: body, trailing rule, end marker.
// It does not consume the Writer; further pages may still be appended.
func (w *Writer) String() string {
	var out strings.Builder
	out.WriteString(w.body.String())
	if w.pages > 0 {
		out.WriteString("---\n\n")
	}
	if w.opts.EndMarker != "" {
		out.WriteString(w.opts.EndMarker + "\n")
	}
	return out.String()
}

func (w *Writer) writeText(b TextBlock) {
	text := strings.TrimSpace(b.Text)
	if text == "" {
		return
	}
	if prefix := b.Level.MarkdownPrefix(); prefix != "" {
		// Headings are single lines; wrapped heading text folds back
		// into one.
		w.body.WriteString(prefix + collapseSpace(text) + "\n\n")
		return
	}
	w.body.WriteString(text + "\n\n")
}

func (w *Writer) writeImage(r ImageRef) {
	w.body.WriteString("![Image](" + r.Path + ")\n\n")
	caption := collapseSpace(r.Caption)
	if caption == "" {
		return
	}
	w.body.WriteString(w.opts.CaptionPrefix + " " + caption + "\n\n")
}

// wordSeparators splits filename stems into words for title derivation.
var wordSeparators = regexp.MustCompile(`[_\-.\s]+`)

// englishTitle title-cases words for derived document titles.
var englishTitle = cases.Title(language.English)

// TitleFromName derives a document title from a source filename: the
// extension is dropped and the separator-split stem is title-cased, so
// "annual_report-2024.pdf" becomes "Annual Report 2024".
func TitleFromName(name string) string {
	stem := Stem(name)
	words := wordSeparators.Split(stem, -1)

	kept := words[:0]
	for _, word := range words {
		if word != "" {
			kept = append(kept, word)
		}
	}
	if len(kept) == 0 {
		return "Document"
	}
	return englishTitle.String(strings.Join(kept, " "))
}

// Stem returns the base filename without its extension.
func Stem(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// collapseSpace folds all interior whitespace runs into single spaces and
// trims the ends.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
