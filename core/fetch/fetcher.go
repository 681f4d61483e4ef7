// Package fetch implements the Fetcher interface.
// It requests one random page summary from a Wikipedia language edition
// and turns the response into a core.PageSummary or a *RequestError.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gaurav-prasanna/wikipage/core"
)

// PageFetcher fetches random page summaries through a Transport.
type PageFetcher struct {
	transport core.Transport
	cfg       core.Config
}

// New creates a PageFetcher that issues requests through transport.
func New(transport core.Transport, cfg core.Config) *PageFetcher {
	return &PageFetcher{
		transport: transport,
		cfg:       cfg,
	}
}

// summaryPayload mirrors the REST summary response. Title and Extract are
// pointers so that an absent key can be told apart from an empty one.
type summaryPayload struct {
	Title       *string `json:"title"`
	Extract     *string `json:"extract"`
	ExtractHTML string  `json:"extract_html"`
	Description string  `json:"description"`
	Lang        string  `json:"lang"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
}

// Fetch performs exactly one request for a random summary in language.
// Every failure, including a malformed or incomplete body, is a *RequestError.
func (f *PageFetcher) Fetch(ctx context.Context, language string) (*core.PageSummary, error) {
	if language == "" {
		return nil, &RequestError{Err: ErrEmptyLanguage}
	}

	log := zerolog.Ctx(ctx)
	url := f.cfg.SummaryURL(language)
	log.Debug().Str("url", url).Dur("timeout", f.cfg.Timeout).Msg("Requesting random page summary")

	start := time.Now()
	resp, err := f.transport.Get(ctx, url, f.cfg.Timeout)
	if err != nil {
		return nil, &RequestError{URL: url, Err: err}
	}
	log.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(resp.Body)).
		Dur("elapsed", time.Since(start)).
		Msg("Received response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &RequestError{URL: url, Err: fmt.Errorf("%w %d", ErrUnexpectedStatus, resp.StatusCode)}
	}

	summary, err := parseSummary(resp.Body)
	if err != nil {
		return nil, &RequestError{URL: url, Err: err}
	}
	return summary, nil
}

// parseSummary decodes a summary body and checks the required fields.
func parseSummary(body []byte) (*core.PageSummary, error) {
	var payload summaryPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding summary: %w", err)
	}

	switch {
	case payload.Title == nil:
		return nil, fmt.Errorf("%w: title", ErrMissingField)
	case *payload.Title == "":
		return nil, fmt.Errorf("%w: title is empty", ErrMissingField)
	case payload.Extract == nil:
		return nil, fmt.Errorf("%w: extract", ErrMissingField)
	}

	return &core.PageSummary{
		Title:       *payload.Title,
		Extract:     *payload.Extract,
		ExtractHTML: payload.ExtractHTML,
		Description: payload.Description,
		Language:    payload.Lang,
		PageURL:     payload.ContentURLs.Desktop.Page,
	}, nil
}
