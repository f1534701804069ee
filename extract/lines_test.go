package extract

import (
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
)

// chunk builds a raw text chunk for grouping tests.
func chunk(s string, x, y, w, fontSize float64, font string) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: w, FontSize: fontSize, Font: font}
}

func TestGroupSpansSingleLine(t *testing.T) {
	texts := []pdf.Text{
		chunk("Hello", 72, 700, 30, 12, "Helvetica"),
		chunk("world", 110, 700, 30, 12, "Helvetica"),
	}

	spans := groupSpans(texts, 0, 792)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Content != "Hello world" {
		t.Errorf("Content = %q, want %q", spans[0].Content, "Hello world")
	}
	if spans[0].Page != 0 {
		t.Errorf("Page = %d, want 0", spans[0].Page)
	}
	if spans[0].FontSize != 12 {
		t.Errorf("FontSize = %v, want 12", spans[0].FontSize)
	}
}

func TestGroupSpansTopDownOffset(t *testing.T) {
	// Bottom-up Y 700 on a 792pt page puts the span near the top.
	texts := []pdf.Text{chunk("High", 72, 700, 25, 12, "Helvetica")}

	spans := groupSpans(texts, 2, 792)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	want := 792.0 - 700 - 12
	if spans[0].Top != want {
		t.Errorf("Top = %v, want %v", spans[0].Top, want)
	}
	if spans[0].Page != 2 {
		t.Errorf("Page = %d, want 2", spans[0].Page)
	}
}

func TestGroupSpansOrdersTopToBottom(t *testing.T) {
	// Extraction order is bottom-first; spans must come back top-first.
	texts := []pdf.Text{
		chunk("bottom paragraph text", 72, 100, 120, 10, "Helvetica"),
		chunk("top paragraph text", 72, 700, 120, 10, "Helvetica"),
	}

	spans := groupSpans(texts, 0, 792)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Content != "top paragraph text" {
		t.Errorf("first span = %q, want the top one", spans[0].Content)
	}
	if spans[0].Top >= spans[1].Top {
		t.Errorf("offsets not ascending: %v then %v", spans[0].Top, spans[1].Top)
	}
}

func TestGroupSpansMergesAdjacentLines(t *testing.T) {
	// Two lines 14pt apart at 12pt type belong to one paragraph span.
	texts := []pdf.Text{
		chunk("first line of the paragraph", 72, 700, 150, 12, "Helvetica"),
		chunk("second line of the paragraph", 72, 686, 150, 12, "Helvetica"),
	}

	spans := groupSpans(texts, 0, 792)
	if len(spans) != 1 {
		t.Fatalf("expected 1 merged span, got %d", len(spans))
	}
	want := "first line of the paragraph\nsecond line of the paragraph"
	if spans[0].Content != want {
		t.Errorf("Content = %q, want %q", spans[0].Content, want)
	}
}

func TestGroupSpansSplitsOnLargeGap(t *testing.T) {
	texts := []pdf.Text{
		chunk("A heading", 72, 700, 60, 12, "Helvetica-Bold"),
		chunk("Body text far below", 72, 600, 110, 12, "Helvetica"),
	}

	spans := groupSpans(texts, 0, 792)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if !spans[0].Bold {
		t.Error("first span should be bold")
	}
	if spans[1].Bold {
		t.Error("second span should not be bold")
	}
}

func TestGroupSpansSplitsOnStyleChange(t *testing.T) {
	// Adjacent lines but a clear font size change: heading then body.
	texts := []pdf.Text{
		chunk("Section Title", 72, 700, 90, 18, "Helvetica-Bold"),
		chunk("Body right beneath the title", 72, 682, 150, 10, "Helvetica"),
	}

	spans := groupSpans(texts, 0, 792)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
	if spans[0].Content != "Section Title" {
		t.Errorf("first span = %q", spans[0].Content)
	}
}

func TestGroupSpansDropsWhitespaceChunks(t *testing.T) {
	texts := []pdf.Text{
		chunk("   ", 72, 700, 10, 12, "Helvetica"),
		chunk("\n\t", 72, 650, 10, 12, "Helvetica"),
	}

	if spans := groupSpans(texts, 0, 792); len(spans) != 0 {
		t.Errorf("expected no spans from whitespace, got %d", len(spans))
	}
}

func TestGroupSpansEmptyInput(t *testing.T) {
	if spans := groupSpans(nil, 0, 792); spans != nil {
		t.Errorf("expected nil spans for empty input, got %v", spans)
	}
}

func TestJoinLineWordBreaks(t *testing.T) {
	tests := []struct {
		name     string
		chunks   []pdf.Text
		expected string
	}{
		{
			name: "gap inserts space",
			chunks: []pdf.Text{
				chunk("Hello", 72, 700, 30, 12, "Helvetica"),
				chunk("world", 110, 700, 30, 12, "Helvetica"),
			},
			expected: "Hello world",
		},
		{
			name: "touching chunks concatenate",
			chunks: []pdf.Text{
				chunk("Hel", 72, 700, 18, 12, "Helvetica"),
				chunk("lo", 90, 700, 12, 12, "Helvetica"),
			},
			expected: "Hello",
		},
		{
			name: "out of order chunks sort by X",
			chunks: []pdf.Text{
				chunk("world", 110, 700, 30, 12, "Helvetica"),
				chunk("Hello", 72, 700, 30, 12, "Helvetica"),
			},
			expected: "Hello world",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ln := joinLine(tt.chunks)
			if ln.text != tt.expected {
				t.Errorf("joinLine() = %q, want %q", ln.text, tt.expected)
			}
		})
	}
}

func TestJoinLinePicksLargestFontSize(t *testing.T) {
	ln := joinLine([]pdf.Text{
		chunk("big", 72, 700, 30, 18, "Helvetica"),
		chunk("small", 110, 700, 20, 9, "Helvetica"),
	})
	if ln.fontSize != 18 {
		t.Errorf("fontSize = %v, want 18", ln.fontSize)
	}
}

func TestIsBoldFont(t *testing.T) {
	tests := []struct {
		font string
		bold bool
	}{
		{"Helvetica-Bold", true},
		{"Arial-BoldMT", true},
		{"Roboto-Black", true},
		{"Helvetica", false},
		{"Times-Italic", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isBoldFont(tt.font); got != tt.bold {
			t.Errorf("isBoldFont(%q) = %v, want %v", tt.font, got, tt.bold)
		}
	}
}

func TestSpanFromLinesTrimsAndJoins(t *testing.T) {
	span := spanFromLines([]line{
		{y: 700, x: 80, fontSize: 12, text: "first line  "},
		{y: 686, x: 72, fontSize: 12, text: "second line"},
	}, 0, 792)

	if strings.Contains(span.Content, "  \n") {
		t.Errorf("trailing spaces not trimmed: %q", span.Content)
	}
	if span.Left != 72 {
		t.Errorf("Left = %v, want leftmost line edge 72", span.Left)
	}
}
