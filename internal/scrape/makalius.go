package scrape

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/keliauta/tripoffers/internal/offers"
)

// soldOutMarker appears in the description of listings that can no longer
// be booked; such items are dropped silently.
const soldOutMarker = "IŠPARDUOTA"

// Makalius scrapes the makalius.lt search listing. The search URL is
// templated with the country term and a 1-based page index; the site
// redirects to its front page once the search runs out of results, which is
// the natural termination signal.
type Makalius struct {
	baseURL string
	fetcher Fetcher
	log     *slog.Logger
}

func NewMakalius(baseURL string, fetcher Fetcher, log *slog.Logger) *Makalius {
	return &Makalius{
		baseURL: strings.TrimRight(baseURL, "/"),
		fetcher: fetcher,
		log:     log.With("agency", offers.AgencyMakalius),
	}
}

func (m *Makalius) Agency() offers.Agency { return offers.AgencyMakalius }

func (m *Makalius) FetchOffers(ctx context.Context, country string) ([]offers.Offer, error) {
	start := time.Now()
	var results []offers.Offer

	for page := 1; page <= maxPages; page++ {
		pageURL := fmt.Sprintf("%s/puslapis/%d/?s=%s", m.baseURL, page, url.QueryEscape(country))

		resp, err := m.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			m.log.Warn("page fetch failed", "page", page, "err", err)
			break
		}
		if resolvedToRoot(resp.FinalURL, m.baseURL) {
			break
		}
		if resp.StatusCode != http.StatusOK {
			m.log.Warn("page fetch returned non-OK status", "page", page, "status", resp.StatusCode)
			break
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
		if err != nil {
			m.log.Warn("page parse failed", "page", page, "err", err)
			break
		}

		doc.Find(".offer.search-offer").Each(func(_ int, item *goquery.Selection) {
			offer, err := m.extractItem(item, country)
			if err != nil {
				// One malformed item never aborts the page; leave a
				// sentinel to be filtered before aggregation.
				m.log.Warn("item parse failed", "page", page, "err", err)
				results = append(results, sentinel())
				return
			}
			if offer != nil {
				results = append(results, *offer)
			}
		})
	}

	m.log.Info("scrape finished", "offers", len(results), "elapsed", time.Since(start))
	return results, nil
}

// extractItem pulls one listing out of the search page. It returns
// (nil, nil) for items that are sold out or missing required fields and an
// error only when the item is structurally broken.
func (m *Makalius) extractItem(item *goquery.Selection, country string) (*offers.Offer, error) {
	href, ok := item.Find("a").First().Attr("href")
	if !ok {
		return nil, errors.New("listing item has no link")
	}

	name := strings.TrimSpace(item.Find(".valign.post-type-post strong").First().Text())
	price := strings.TrimSpace(item.Find(".price .valign strong").First().Text())
	description := squeeze(item.Find(".offer-description p").First().Text())

	if strings.Contains(description, soldOutMarker) {
		return nil, nil
	}
	if name == "" || price == "" || description == "" {
		return nil, nil
	}

	return &offers.Offer{
		Name:        name,
		Price:       price,
		Description: description,
		Agency:      offers.AgencyMakalius,
		URL:         href,
		Country:     country,
	}, nil
}

// resolvedToRoot reports whether a fetched page ended up at the site root,
// which the site uses instead of a 404 when a search page index is past the
// last result.
func resolvedToRoot(finalURL, baseURL string) bool {
	return strings.TrimRight(finalURL, "/") == baseURL
}
