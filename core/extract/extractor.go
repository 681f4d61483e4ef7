// Package extract implements the Extractor interface.
// It cleans the extract_html fragment of a page summary by removing
// markup that has no place in rendered output (references, media, scripts).
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are removed from the fragment before it is normalized.
var noiseSelectors = []string{
	"script", "style", "noscript",
	"img", "picture", "figure", "figcaption",
	"audio", "video", "svg",
	"sup.reference", ".mw-ref", ".noprint",
	"span[typeof='mw:Nowiki']",
}

// HTMLExtractor strips noise from a summary's HTML fragment.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract returns the cleaned inner HTML of fragment. An empty or
// whitespace-only fragment yields an empty string.
func (e *HTMLExtractor) Extract(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return "", fmt.Errorf("no body in parsed fragment")
	}

	result, err := body.Html()
	if err != nil {
		return "", fmt.Errorf("serializing content: %w", err)
	}
	return strings.TrimSpace(result), nil
}

// Text returns the visible text of fragment with whitespace collapsed.
func (e *HTMLExtractor) Text(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}
