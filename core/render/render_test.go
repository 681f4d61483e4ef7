package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/wikipage/core"
)

func loremPage() *core.Page {
	return &core.Page{
		Summary: core.PageSummary{
			Title:       "Lorem Ipsum",
			Extract:     "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
			Description: "Placeholder text",
			PageURL:     "https://en.wikipedia.org/wiki/Lorem_ipsum",
		},
		Language:  "en",
		Markdown:  "**Lorem ipsum** dolor sit amet.",
		FetchedAt: "2026-01-02T03:04:05Z",
	}
}

var (
	_ core.Renderer = (*TextRenderer)(nil)
	_ core.Renderer = (*MarkdownRenderer)(nil)
	_ core.Renderer = (*JSONRenderer)(nil)
	_ core.Renderer = (*PDFRenderer)(nil)
)

func TestTextRenderer_TitleOnly(t *testing.T) {
	data, err := NewTextRenderer(false, 0).Render(loremPage())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if string(data) != "Lorem Ipsum\n" {
		t.Errorf("Render() = %q, want %q", data, "Lorem Ipsum\n")
	}
}

func TestTextRenderer_WithExtract(t *testing.T) {
	data, err := NewTextRenderer(true, 40).Render(loremPage())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := string(data)
	if !strings.HasPrefix(out, "Lorem Ipsum\n\nLorem ipsum dolor sit amet,") {
		t.Errorf("unexpected layout: %q", out)
	}
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if len(line) > 40 {
			t.Errorf("line longer than 40: %q", line)
		}
	}
}

func TestTextRenderer_EmptyExtractPrintsTitleOnly(t *testing.T) {
	page := loremPage()
	page.Summary.Extract = ""
	data, _ := NewTextRenderer(true, 0).Render(page)
	if string(data) != "Lorem Ipsum\n" {
		t.Errorf("Render() = %q", data)
	}
}

func TestMarkdownRenderer(t *testing.T) {
	data, err := NewMarkdownRenderer().Render(loremPage())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := string(data)
	for _, want := range []string{
		"# Lorem Ipsum\n",
		"*Placeholder text*",
		"**Lorem ipsum** dolor sit amet.",
		"Source: <https://en.wikipedia.org/wiki/Lorem_ipsum>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
}

func TestMarkdownRenderer_FallsBackToPlainExtract(t *testing.T) {
	page := loremPage()
	page.Markdown = ""
	data, _ := NewMarkdownRenderer().Render(page)
	if !strings.Contains(string(data), "consectetur adipiscing elit") {
		t.Errorf("expected plain extract in body:\n%s", data)
	}
}

func TestJSONRenderer(t *testing.T) {
	data, err := NewJSONRenderer().Render(loremPage())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var got PageJSON
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Metadata.Title != "Lorem Ipsum" || got.Metadata.Language != "en" {
		t.Errorf("unexpected metadata: %+v", got.Metadata)
	}
	if got.Metadata.FetchedAt != "2026-01-02T03:04:05Z" {
		t.Errorf("FetchedAt = %q", got.Metadata.FetchedAt)
	}
	if !strings.HasPrefix(got.Content.Text, "Lorem ipsum dolor") {
		t.Errorf("Content.Text = %q", got.Content.Text)
	}
}

func TestJSONRenderer_PrefersReportedLanguage(t *testing.T) {
	page := loremPage()
	page.Language = "simple"
	page.Summary.Language = "en"
	data, _ := NewJSONRenderer().Render(page)

	var got PageJSON
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Metadata.Language != "en" {
		t.Errorf("Language = %q, want en", got.Metadata.Language)
	}
}

func TestPDFRenderer(t *testing.T) {
	page := loremPage()
	page.Summary.Title = "Kraków"
	data, err := NewPDFRenderer().Render(page)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF: %q", data[:min(len(data), 16)])
	}
}

func TestCleanInlineMarkdown(t *testing.T) {
	tests := map[string]string{
		"**bold** text":        "bold text",
		"a [link](http://x) b": "a link b",
		"use `code` here":      "use code here",
		"plain":                "plain",
	}
	for in, want := range tests {
		if got := cleanInlineMarkdown(in); got != want {
			t.Errorf("cleanInlineMarkdown(%q) = %q, want %q", in, got, want)
		}
	}
}
