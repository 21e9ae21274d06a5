package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const userAgent = "tripoffers/1.0 (travel package aggregator)"

// Page is one fetched HTTP response. FinalURL is the URL the request
// resolved to after redirects; the Makalius adapter uses it as its
// end-of-results signal.
type Page struct {
	StatusCode int
	FinalURL   string
	Body       []byte
}

// Fetcher fetches a single page. Adapters receive it injected so tests can
// feed recorded fixtures instead of live sites.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

// HTTPFetcher is the production Fetcher with a bounded per-request timeout.
type HTTPFetcher struct {
	client *http.Client
}

func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (*Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", rawURL, err)
	}

	return &Page{
		StatusCode: resp.StatusCode,
		FinalURL:   resp.Request.URL.String(),
		Body:       body,
	}, nil
}
