package extract

import (
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Grouping thresholds, in points or fractions of the font size. These follow
// common single-column extraction defaults; they are deliberately not tuned
// per document.
const (
	// rowTolerance is the Y tolerance for chunks on the same text line.
	rowTolerance = 2.5
	// wordGapFactor is the horizontal gap, as a fraction of font size,
	// above which adjacent chunks get a separating space.
	wordGapFactor = 0.3
	// lineGapFactor is the maximum vertical line spacing, as a multiple of
	// font size, for two lines to belong to the same span.
	lineGapFactor = 1.6
	// fontSizeJitter is the font size delta still treated as one style.
	fontSizeJitter = 0.6
)

// line is one assembled text line in bottom-up page coordinates.
type line struct {
	y        float64 // baseline of the line
	x        float64 // left edge
	fontSize float64
	bold     bool
	text     string
}

// groupSpans assembles raw positioned text chunks into text spans: chunks are
// bucketed into lines by Y proximity, joined left to right with inferred word
// breaks, and consecutive lines with compatible spacing and style merge into
// one span. Whitespace-only chunks are dropped and never reach the caller.
func groupSpans(texts []pdf.Text, pageIndex int, pageHeight float64) []TextSpan {
	lines := assembleLines(texts)
	if len(lines) == 0 {
		return nil
	}

	// Top of page first. Stable keeps extraction order for identical Y.
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].y > lines[j].y
	})

	var spans []TextSpan
	block := []line{lines[0]}

	flush := func() {
		span := spanFromLines(block, pageIndex, pageHeight)
		if strings.TrimSpace(span.Content) != "" {
			spans = append(spans, span)
		}
	}

	for _, ln := range lines[1:] {
		prev := block[len(block)-1]
		gap := prev.y - ln.y
		size := prev.fontSize
		if size <= 0 {
			size = 10
		}
		sameStyle := abs(ln.fontSize-prev.fontSize) <= fontSizeJitter && ln.bold == prev.bold
		if gap > 0 && gap <= lineGapFactor*size && sameStyle {
			block = append(block, ln)
			continue
		}
		flush()
		block = []line{ln}
	}
	flush()

	return spans
}

// assembleLines buckets chunks into text lines by Y proximity and joins each
// line's chunks left to right.
func assembleLines(texts []pdf.Text) []line {
	type bucket struct {
		yMin, yMax float64
		chunks     []pdf.Text
	}

	var buckets []bucket
	for _, t := range texts {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		placed := false
		for i := range buckets {
			if t.Y >= buckets[i].yMin-rowTolerance && t.Y <= buckets[i].yMax+rowTolerance {
				buckets[i].chunks = append(buckets[i].chunks, t)
				if t.Y < buckets[i].yMin {
					buckets[i].yMin = t.Y
				}
				if t.Y > buckets[i].yMax {
					buckets[i].yMax = t.Y
				}
				placed = true
				break
			}
		}
		if !placed {
			buckets = append(buckets, bucket{yMin: t.Y, yMax: t.Y, chunks: []pdf.Text{t}})
		}
	}

	lines := make([]line, 0, len(buckets))
	for _, b := range buckets {
		lines = append(lines, joinLine(b.chunks))
	}
	return lines
}

// joinLine orders a line's chunks by X and concatenates them, inserting a
// space wherever the horizontal gap exceeds the word-break threshold.
func joinLine(chunks []pdf.Text) line {
	sort.SliceStable(chunks, func(i, j int) bool {
		return chunks[i].X < chunks[j].X
	})

	ln := line{
		y:        chunks[0].Y,
		x:        chunks[0].X,
		fontSize: chunks[0].FontSize,
		bold:     isBoldFont(chunks[0].Font),
	}

	var sb strings.Builder
	var rightEdge float64
	for i, t := range chunks {
		if i > 0 {
			gap := t.X - rightEdge
			threshold := wordGapFactor * t.FontSize
			if threshold <= 0 {
				threshold = 3.0
			}
			if gap > threshold && !strings.HasSuffix(sb.String(), " ") && !strings.HasPrefix(t.S, " ") {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(t.S)
		if edge := t.X + t.W; edge > rightEdge {
			rightEdge = edge
		}
		if t.FontSize > ln.fontSize {
			ln.fontSize = t.FontSize
		}
		if isBoldFont(t.Font) {
			ln.bold = true
		}
	}
	ln.text = sb.String()
	return ln
}

// spanFromLines folds a block of lines into one TextSpan. The span's top
// offset approximates the first line's ascent converted to top-down page
// coordinates.
func spanFromLines(block []line, pageIndex int, pageHeight float64) TextSpan {
	first := block[0]
	top := pageHeight - first.y - first.fontSize
	if top < 0 {
		top = 0
	}

	left := first.x
	parts := make([]string, 0, len(block))
	for _, ln := range block {
		parts = append(parts, strings.TrimRight(ln.text, " "))
		if ln.x < left {
			left = ln.x
		}
	}

	return TextSpan{
		Page:     pageIndex,
		Top:      top,
		Left:     left,
		Content:  strings.TrimSpace(strings.Join(parts, "\n")),
		FontSize: first.fontSize,
		Bold:     first.bold,
	}
}

// isBoldFont reports whether a PDF font name declares a bold face.
func isBoldFont(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "bold") || strings.Contains(lower, "black") || strings.Contains(lower, "heavy")
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
