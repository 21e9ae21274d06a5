package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// Renderer returns the markup of a page after client-side scripts have run.
// Injected so the TezTour adapter is testable with recorded markup instead
// of a live browser.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

// ChromeRenderer drives a headless Chrome session. Each Render call owns its
// session: allocation and teardown are scoped to the call, and the deferred
// cancels release the browser subprocess on every exit path, extraction
// failures included.
type ChromeRenderer struct {
	wait time.Duration
}

// NewChromeRenderer creates a renderer that waits the given duration after
// navigation for dynamic content to settle.
func NewChromeRenderer(wait time.Duration) *ChromeRenderer {
	if wait <= 0 {
		wait = 5 * time.Second
	}
	return &ChromeRenderer{wait: wait}
}

func (r *ChromeRenderer) Render(ctx context.Context, url string) (string, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var markup string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(r.wait),
		chromedp.OuterHTML("html", &markup, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", url, err)
	}
	return markup, nil
}
