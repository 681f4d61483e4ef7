// Package core defines the shared types and pipeline interfaces for wikipage.
// Each stage of the pipeline is a small, testable interface.
package core

import (
	"context"
	"time"
)

// Response is what a Transport hands back for a completed HTTP exchange.
// A non-2xx status is still a Response; classifying it is the caller's job.
type Response struct {
	StatusCode int
	Body       []byte
}

// PageSummary is the parsed result of one successful random page fetch.
type PageSummary struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	ExtractHTML string `json:"extract_html,omitempty"`
	Description string `json:"description,omitempty"`
	Language    string `json:"lang,omitempty"`
	PageURL     string `json:"url,omitempty"`
}

// Page is everything a Renderer needs to produce one output.
type Page struct {
	Summary   PageSummary
	Language  string // language edition that was requested
	Markdown  string // extract normalized to Markdown; may be empty
	FetchedAt string // ISO8601
}

// Transport performs the actual network I/O for a single GET.
type Transport interface {
	Get(ctx context.Context, url string, timeout time.Duration) (*Response, error)
}

// Fetcher retrieves one random page summary from a language edition.
type Fetcher interface {
	Fetch(ctx context.Context, language string) (*PageSummary, error)
}

// Extractor strips noise from an HTML fragment.
type Extractor interface {
	Extract(html string) (string, error)
	// Text returns only the visible text of the fragment.
	Text(html string) (string, error)
}

// Normalizer converts cleaned HTML into Markdown.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts a Page into a final output format.
type Renderer interface {
	Render(page *Page) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
