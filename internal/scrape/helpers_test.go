package scrape

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// fakeFetcher serves recorded pages by URL and records every request. URLs
// without a recorded page fail the fetch, which adapters treat as the end
// of that source's pagination.
type fakeFetcher struct {
	pages map[string]*Page
	calls []string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{pages: make(map[string]*Page)}
}

// add records a 200 page whose final URL equals the requested URL.
func (f *fakeFetcher) add(url, body string) {
	f.pages[url] = &Page{StatusCode: http.StatusOK, FinalURL: url, Body: []byte(body)}
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (*Page, error) {
	f.calls = append(f.calls, url)
	if p, ok := f.pages[url]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("no recorded page for %s", url)
}

func (f *fakeFetcher) callsMatching(substr string) int {
	n := 0
	for _, c := range f.calls {
		if strings.Contains(c, substr) {
			n++
		}
	}
	return n
}

// fakeRenderer returns one recorded markup blob for any URL.
type fakeRenderer struct {
	markup string
	err    error
	urls   []string
}

func (f *fakeRenderer) Render(_ context.Context, url string) (string, error) {
	f.urls = append(f.urls, url)
	if f.err != nil {
		return "", f.err
	}
	return f.markup, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
