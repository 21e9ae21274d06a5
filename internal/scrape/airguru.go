package scrape

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/keliauta/tripoffers/internal/offers"
)

// AirGuru scrapes the airguru.lt catalog. The catalog is not searchable by
// destination, so every page is fetched and items are filtered client-side
// by a case-insensitive substring match on the visible title. The catalog
// gives no end-of-results signal, so pagination always walks the full page
// cap; an item's full description lives on its detail page and costs a
// second fetch.
type AirGuru struct {
	baseURL string
	fetcher Fetcher
	log     *slog.Logger
}

func NewAirGuru(baseURL string, fetcher Fetcher, log *slog.Logger) *AirGuru {
	return &AirGuru{
		baseURL: strings.TrimRight(baseURL, "/"),
		fetcher: fetcher,
		log:     log.With("agency", offers.AgencyAirGuru),
	}
}

func (a *AirGuru) Agency() offers.Agency { return offers.AgencyAirGuru }

func (a *AirGuru) FetchOffers(ctx context.Context, country string) ([]offers.Offer, error) {
	start := time.Now()
	var results []offers.Offer

	for page := 1; page <= maxPages; page++ {
		pageURL := fmt.Sprintf("%s/katalogas/?&page=%d", a.baseURL, page)

		resp, err := a.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			a.log.Warn("page fetch failed", "page", page, "err", err)
			break
		}
		if resp.StatusCode != http.StatusOK {
			a.log.Warn("page fetch returned non-OK status", "page", page, "status", resp.StatusCode)
			break
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
		if err != nil {
			a.log.Warn("page parse failed", "page", page, "err", err)
			break
		}

		doc.Find(".product_element").Each(func(_ int, item *goquery.Selection) {
			title := item.Find(".title-wrapper span").First().Text()
			if !containsFold(title, country) {
				return
			}
			offer, err := a.extractItem(ctx, item, country)
			if err != nil {
				a.log.Warn("item parse failed", "page", page, "err", err)
				results = append(results, sentinel())
				return
			}
			if offer != nil {
				results = append(results, *offer)
			}
		})
	}

	a.log.Info("scrape finished", "offers", len(results), "elapsed", time.Since(start))
	return results, nil
}

// extractItem extracts one catalog card, fetching its detail page for the
// full description. Items whose detail page cannot be fetched are dropped
// whole; an incomplete description must not reach the store.
func (a *AirGuru) extractItem(ctx context.Context, item *goquery.Selection, country string) (*offers.Offer, error) {
	href, ok := item.Find("a").First().Attr("href")
	if !ok {
		return nil, errors.New("catalog item has no link")
	}

	detail, err := a.fetcher.Fetch(ctx, href)
	if err != nil {
		a.log.Debug("detail fetch failed, dropping item", "url", href, "err", err)
		return nil, nil
	}
	if detail.StatusCode != http.StatusOK {
		a.log.Debug("detail fetch returned non-OK status, dropping item",
			"url", href, "status", detail.StatusCode)
		return nil, nil
	}

	detailDoc, err := goquery.NewDocumentFromReader(bytes.NewReader(detail.Body))
	if err != nil {
		return nil, fmt.Errorf("parse detail page %s: %w", href, err)
	}

	name := strings.TrimSpace(item.Find(".title-wrapper span").First().Text())
	price := strings.TrimSpace(item.Find(".price-wrapper span").First().Text())
	description := strings.TrimSpace(detailDoc.Find(".content-description").First().Text())

	if name == "" || price == "" {
		return nil, nil
	}

	return &offers.Offer{
		Name:        name,
		Price:       price,
		Description: description,
		Agency:      offers.AgencyAirGuru,
		URL:         href,
		Country:     country,
	}, nil
}
