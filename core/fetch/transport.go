package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gaurav-prasanna/wikipage/core"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 1 << 20

// HTTPTransport performs GET requests over net/http.
type HTTPTransport struct {
	client    *http.Client
	userAgent string
}

// NewHTTPTransport creates an HTTPTransport that identifies itself with userAgent.
func NewHTTPTransport(userAgent string) *HTTPTransport {
	return &HTTPTransport{
		client:    &http.Client{},
		userAgent: userAgent,
	}
}

// Get issues a single GET bounded by timeout. Any status code is returned
// as a Response; only transport-level failures produce an error.
func (t *HTTPTransport) Get(ctx context.Context, url string, timeout time.Duration) (*core.Response, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.Response{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}
