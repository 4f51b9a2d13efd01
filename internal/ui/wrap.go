package ui

import (
	"strings"

	internalstrings "github.com/amonks/rtd/internal/strings"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// WrapIndent word-wraps value to width columns and then indents every line
// by spaces. Existing newlines are kept.
func WrapIndent(value string, width, spaces int) string {
	value = internalstrings.NormalizeNewlines(value)
	value = internalstrings.TrimTrailingNewlines(value)

	wrapWidth := width - spaces
	if wrapWidth < 1 {
		wrapWidth = 1
	}
	wrapped := wordwrap.String(value, wrapWidth)
	if spaces <= 0 {
		return wrapped
	}
	return indent.String(wrapped, uint(spaces))
}

// FirstLine returns value up to its first newline, with an ellipsis
// when more lines follow.
func FirstLine(value string) string {
	value = internalstrings.NormalizeNewlines(value)
	first, _, more := strings.Cut(value, "\n")
	if more {
		return first + "..."
	}
	return first
}
