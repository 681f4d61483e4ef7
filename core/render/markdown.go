package render

import (
	"strings"

	"github.com/gaurav-prasanna/wikipage/core"
)

// MarkdownRenderer writes the page as a small Markdown document: a heading,
// the description in italics, the extract and a source link.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render builds the Markdown document. The normalized extract is preferred;
// the plain extract is used when no HTML was available.
func (r *MarkdownRenderer) Render(page *core.Page) ([]byte, error) {
	s := page.Summary

	var b strings.Builder
	b.WriteString("# " + s.Title + "\n")
	if s.Description != "" {
		b.WriteString("\n*" + s.Description + "*\n")
	}
	if body := bodyMarkdown(page); body != "" {
		b.WriteString("\n" + body + "\n")
	}
	if s.PageURL != "" {
		b.WriteString("\nSource: <" + s.PageURL + ">\n")
	}
	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

func bodyMarkdown(page *core.Page) string {
	if page.Markdown != "" {
		return page.Markdown
	}
	return strings.TrimSpace(page.Summary.Extract)
}
