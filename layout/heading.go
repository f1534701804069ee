// Package layout provides heading classification for extracted text spans.
//
// PDFs expose no semantic heading tags, so classification is a deliberate
// heuristic over the text itself: short all-caps spans read as top-level
// headings, short title-case spans as second-level headings, everything else
// as body text. The rules are evaluated in fixed precedence and depend only
// on the span content, never on document-wide context, which keeps the
// classifier a pure function that is trivial to test in isolation. Atypical
// typography will be misclassified; that is the accepted trade-off.
package layout

import (
	"strings"
	"unicode"
)

// HeadingLevel represents the Markdown heading depth assigned to a span.
type HeadingLevel int

const (
	// Paragraph is body text, no heading.
	Paragraph HeadingLevel = iota
	// Heading1 renders as a level-1 heading.
	Heading1
	// Heading2 renders as a level-2 heading.
	Heading2
)

// String returns a string representation of the heading level.
func (l HeadingLevel) String() string {
	switch l {
	case Heading1:
		return "h1"
	case Heading2:
		return "h2"
	default:
		return "paragraph"
	}
}

// MarkdownPrefix returns the Markdown marker for the level, including the
// trailing space, or an empty string for paragraphs.
func (l HeadingLevel) MarkdownPrefix() string {
	switch l {
	case Heading1:
		return "# "
	case Heading2:
		return "## "
	default:
		return ""
	}
}

// Config holds the classification thresholds. The defaults are tuned for
// typical report typography; they are configuration, not contract.
type Config struct {
	// ShortLineLength is the maximum length, in runes, for an all-caps
	// span to classify as a level-1 heading.
	ShortLineLength int

	// TitleLineLength is the maximum length, in runes, for a title-case
	// span to classify as a level-2 heading.
	TitleLineLength int

	// TitleWordRatio is the fraction of words that must be capitalized
	// for a span to count as title case.
	TitleWordRatio float64
}

// DefaultConfig returns the default classification thresholds.
func DefaultConfig() Config {
	return Config{
		ShortLineLength: 60,
		TitleLineLength: 100,
		TitleWordRatio:  0.6,
	}
}

// Classifier applies the heading heuristic with a fixed configuration.
type Classifier struct {
	config Config
}

// NewClassifier creates a Classifier with default thresholds.
func NewClassifier() *Classifier {
	return NewClassifierWithConfig(DefaultConfig())
}

// NewClassifierWithConfig creates a Classifier with custom thresholds.
// Zero-valued fields fall back to their defaults.
func NewClassifierWithConfig(config Config) *Classifier {
	def := DefaultConfig()
	if config.ShortLineLength <= 0 {
		config.ShortLineLength = def.ShortLineLength
	}
	if config.TitleLineLength <= 0 {
		config.TitleLineLength = def.TitleLineLength
	}
	if config.TitleWordRatio <= 0 {
		config.TitleWordRatio = def.TitleWordRatio
	}
	return &Classifier{config: config}
}

// Classify assigns a heading level to span text. Rules in precedence order:
//
//  1. Short and fully uppercase (ignoring digits and punctuation) -> Heading1.
//  2. Title case (capitalized majority of words) and medium length -> Heading2.
//  3. Otherwise -> Paragraph.
//
// Multi-line spans are judged by their first line; the casing of a wrapped
// heading's first line is the best signal available.
func (c *Classifier) Classify(text string) HeadingLevel {
	line := firstLine(text)
	if line == "" {
		return Paragraph
	}

	length := len([]rune(line))

	if length <= c.config.ShortLineLength && isAllCaps(line) {
		return Heading1
	}
	if length <= c.config.TitleLineLength && isTitleCase(line, c.config.TitleWordRatio) {
		return Heading2
	}
	return Paragraph
}

// Classify assigns a heading level using the default thresholds.
func Classify(text string) HeadingLevel {
	return NewClassifier().Classify(text)
}

// firstLine returns the trimmed first non-empty line of text.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// isAllCaps reports whether every letter in s is uppercase. Digits,
// punctuation, and spaces are ignored; at least one letter is required.
func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return hasLetter
}

// isTitleCase reports whether at least ratio of the words in s start with an
// uppercase letter. Words starting with a non-letter are not counted either
// way.
func isTitleCase(s string, ratio float64) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}

	letterWords := 0
	capitalized := 0
	for _, w := range words {
		r := []rune(w)[0]
		if !unicode.IsLetter(r) {
			continue
		}
		letterWords++
		if unicode.IsUpper(r) {
			capitalized++
		}
	}
	if letterWords == 0 {
		return false
	}
	return float64(capitalized)/float64(letterWords) >= ratio
}
