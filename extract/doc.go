// Package extract provides positioned element extraction from PDF documents.
//
// This package opens a PDF byte stream and yields, page by page, the content
// elements later reordered into reading order: text spans carrying their page
// position and font signals, and embedded raster images carrying their encoded
// bytes.
//
// # Extraction
//
// The [Document] type wraps an opened PDF:
//
//	doc, err := extract.Open(pdfBytes)
//	if err != nil {
//	    // *ParseError: not a PDF, encrypted, or unreadable
//	}
//	defer doc.Close()
//	for i := 0; i < doc.PageCount(); i++ {
//	    page, err := doc.Page(i)
//	    ...
//	}
//
// Each [Page] exposes its elements in extraction order, not reading order;
// callers sort by [Element.Offset] per page. Offsets are top-of-bounding-box
// coordinates with the origin at the top of the page, so ascending offset is
// top-to-bottom.
//
// # Coordinate approximation
//
// Text positions come from the PDF text-showing operators and image positions
// from the current transformation matrix at each image placement. Horizontal
// layout is ignored when ordering: multi-column pages will interleave their
// columns. This mirrors the reading-order policy of the conversion pipeline
// and is intentional.
package extract
