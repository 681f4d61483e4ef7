// Package render provides output renderers for wikipage.
// This file implements the text renderer used for terminal output.
package render

import (
	"strings"

	"github.com/gaurav-prasanna/wikipage/core"
	"github.com/gaurav-prasanna/wikipage/core/wrap"
)

// TextRenderer prints the page title, optionally followed by the wrapped extract.
type TextRenderer struct {
	ShowExtract bool
	wrapper     *wrap.Wrapper
}

// NewTextRenderer creates a TextRenderer wrapping the extract at width columns.
func NewTextRenderer(showExtract bool, width int) *TextRenderer {
	return &TextRenderer{
		ShowExtract: showExtract,
		wrapper:     wrap.New(width),
	}
}

// Render returns the title line, and the extract after a blank line when enabled.
func (r *TextRenderer) Render(page *core.Page) ([]byte, error) {
	var b strings.Builder
	b.WriteString(page.Summary.Title)
	b.WriteByte('\n')

	if r.ShowExtract {
		if extract := r.wrapper.Fill(page.Summary.Extract); extract != "" {
			b.WriteByte('\n')
			b.WriteString(extract)
			b.WriteByte('\n')
		}
	}
	return []byte(b.String()), nil
}

// Extension returns the file extension for text output.
func (r *TextRenderer) Extension() string {
	return ".txt"
}
