package ocr

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanOptions controls post-processing of recognized text. OCR output for
// a single table cell routinely carries trailing newlines, stray quote
// marks from cell borders misread as punctuation, and decomposed unicode;
// cleaning normalizes that before the text lands in the table.
type CleanOptions struct {
	// TrimSpace removes leading and trailing whitespace.
	TrimSpace bool

	// TrimQuotes removes wrapping single and double quote characters,
	// including the typographic variants OCR engines often emit.
	TrimQuotes bool

	// StripNewlines removes all newline characters; a table cell is
	// logically one line.
	StripNewlines bool

	// Normalize recomposes the text to Unicode NFC.
	Normalize bool
}

// DefaultCleanOptions enables every cleaning step.
func DefaultCleanOptions() CleanOptions {
	return CleanOptions{
		TrimSpace:     true,
		TrimQuotes:    true,
		StripNewlines: true,
		Normalize:     true,
	}
}

// Clean applies the enabled steps to s.
func (o CleanOptions) Clean(s string) string {
	if o.Normalize {
		s = norm.NFC.String(s)
	}
	if o.StripNewlines {
		s = strings.ReplaceAll(s, "\r", "")
		s = strings.ReplaceAll(s, "\n", "")
	}
	if o.TrimSpace {
		s = strings.TrimSpace(s)
	}
	if o.TrimQuotes {
		s = strings.Trim(s, `'"`+"‘’“”")
	}
	return s
}
