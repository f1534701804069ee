package extract

// Element is a positioned content element extracted from a PDF page.
// Implementations are TextSpan and ImageBlock.
type Element interface {
	// PageIndex is the zero-based index of the page the element belongs to.
	PageIndex() int

	// Offset is the top-of-bounding-box coordinate in top-down page space.
	// It is the sole sort key when assembling reading order; ties keep
	// extraction order (stable sort).
	Offset() float64
}

// TextSpan is a block of native PDF text with position and font signals.
// Content may span multiple lines, joined with newlines.
type TextSpan struct {
	Page     int
	Top      float64
	Left     float64
	Content  string
	FontSize float64
	Bold     bool
}

// PageIndex implements Element.
func (s TextSpan) PageIndex() int { return s.Page }

// Offset implements Element.
func (s TextSpan) Offset() float64 { return s.Top }

// ImageBlock is an embedded raster image extracted from a page.
type ImageBlock struct {
	Page int
	Top  float64

	// Data is the encoded image payload (PNG, JPEG, or TIFF depending on
	// the source stream's filter).
	Data []byte

	// FileType is the payload's file extension without the dot, e.g. "png".
	FileType string

	// Sequence is the 1-based index of the image on its page, assigned in
	// a deterministic object-number order so reruns name images identically.
	Sequence int

	Width  int
	Height int
}

// PageIndex implements Element.
func (b ImageBlock) PageIndex() int { return b.Page }

// Offset implements Element.
func (b ImageBlock) Offset() float64 { return b.Top }
