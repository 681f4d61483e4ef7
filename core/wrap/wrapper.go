// Package wrap splits plain text into lines of bounded width for the terminal.
// Words are never broken; a word longer than the width gets its own line.
package wrap

import (
	"strings"
	"unicode/utf8"
)

// DefaultWidth is the line width used when none is given.
const DefaultWidth = 70

// Wrapper fills text into lines of at most Width runes.
type Wrapper struct {
	Width int
}

// New creates a Wrapper with the given width.
// Defaults to DefaultWidth if width <= 0.
func New(width int) *Wrapper {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Wrapper{Width: width}
}

// Lines splits text into lines. Runs of whitespace, including newlines,
// collapse to a single space.
func (w *Wrapper) Lines(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var b strings.Builder
	length := 0
	for _, word := range words {
		n := utf8.RuneCountInString(word)
		if length > 0 && length+1+n > w.Width {
			lines = append(lines, b.String())
			b.Reset()
			length = 0
		}
		if length > 0 {
			b.WriteByte(' ')
			length++
		}
		b.WriteString(word)
		length += n
	}
	lines = append(lines, b.String())
	return lines
}

// Fill returns text wrapped into a single newline-separated string.
func (w *Wrapper) Fill(text string) string {
	return strings.Join(w.Lines(text), "\n")
}
