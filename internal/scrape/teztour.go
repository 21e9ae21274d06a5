package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/keliauta/tripoffers/internal/offers"
)

// noDescription stands in when a tour box has no structured description
// element; such items are kept, not dropped.
const noDescription = "No description"

// TezTour scrapes the teztour.lt best-offers page. The page is rendered
// client-side, so it goes through the Renderer capability instead of a
// plain fetch; all current offers are on the one page, so there is no
// pagination.
type TezTour struct {
	baseURL  string
	renderer Renderer
	log      *slog.Logger
}

func NewTezTour(baseURL string, renderer Renderer, log *slog.Logger) *TezTour {
	return &TezTour{
		baseURL:  strings.TrimRight(baseURL, "/"),
		renderer: renderer,
		log:      log.With("agency", offers.AgencyTezTour),
	}
}

func (t *TezTour) Agency() offers.Agency { return offers.AgencyTezTour }

func (t *TezTour) FetchOffers(ctx context.Context, country string) ([]offers.Offer, error) {
	start := time.Now()

	markup, err := t.renderer.Render(ctx, t.baseURL+"/bestoffers.lt.html?product=tours")
	if err != nil {
		return nil, fmt.Errorf("render best offers page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse rendered page: %w", err)
	}

	var results []offers.Offer
	doc.Find(".tour-box").Each(func(_ int, item *goquery.Selection) {
		title := strings.TrimSpace(item.Find(".text-upper").First().Text())
		if !containsFold(title, country) {
			return
		}

		href, ok := item.Find(".search-url").First().Attr("href")
		if !ok {
			t.log.Warn("tour box has no link", "title", title)
			results = append(results, sentinel())
			return
		}

		description := strings.TrimSpace(item.Find(".description-field strong").First().Text())
		if description == "" {
			description = noDescription
		}
		price := strings.TrimSpace(item.Find(".eur-currency").First().Text())

		results = append(results, offers.Offer{
			Name:        title,
			Price:       price,
			Description: description,
			Agency:      offers.AgencyTezTour,
			URL:         t.baseURL + href,
			Country:     country,
		})
	})

	t.log.Info("scrape finished", "offers", len(results), "elapsed", time.Since(start))
	return results, nil
}
