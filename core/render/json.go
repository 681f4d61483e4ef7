// JSON renderer.
// Emits the summary together with request metadata and the Markdown body.

package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/wikipage/core"
)

// PageMetadata describes where and when a page was fetched.
type PageMetadata struct {
	Title     string `json:"title"`
	Language  string `json:"language"`
	URL       string `json:"url,omitempty"`
	FetchedAt string `json:"fetched_at"` // ISO8601
}

// PageContent holds the text forms of the extract.
type PageContent struct {
	Description string `json:"description,omitempty"`
	Text        string `json:"text"`
	Markdown    string `json:"markdown,omitempty"`
}

// PageJSON is the complete JSON output for a single page.
type PageJSON struct {
	Metadata PageMetadata `json:"metadata"`
	Content  PageContent  `json:"content"`
}

// JSONRenderer produces structured JSON output.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the page into indented JSON.
func (r *JSONRenderer) Render(page *core.Page) ([]byte, error) {
	s := page.Summary
	language := s.Language
	if language == "" {
		language = page.Language
	}

	out := PageJSON{
		Metadata: PageMetadata{
			Title:     s.Title,
			Language:  language,
			URL:       s.PageURL,
			FetchedAt: page.FetchedAt,
		},
		Content: PageContent{
			Description: s.Description,
			Text:        s.Extract,
			Markdown:    page.Markdown,
		},
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
