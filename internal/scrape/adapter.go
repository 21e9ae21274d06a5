package scrape

import (
	"context"
	"strings"

	"github.com/keliauta/tripoffers/internal/offers"
)

// Adapter extracts offers for a destination country from one agency site.
// Implementations keep transient source failures behind this boundary: a
// failed or non-OK page fetch ends pagination early and the offers gathered
// so far come back with a nil error. An error return means the source as a
// whole produced nothing usable this run.
type Adapter interface {
	Agency() offers.Agency
	FetchOffers(ctx context.Context, country string) ([]offers.Offer, error)
}

// maxPages caps pagination for the paginating adapters so misbehaving
// pagination can never turn into an unbounded crawl.
const maxPages = 10

// sentinelName marks a record emitted when a single listing item could not
// be structurally parsed. The record is invalid on purpose: it keeps the
// page loop going and is filtered out before aggregation.
const sentinelName = "Name not found"

func sentinel() offers.Offer {
	return offers.Offer{Name: sentinelName}
}

// squeeze collapses all whitespace runs to single spaces and trims the ends.
func squeeze(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// containsFold reports whether haystack contains needle case-insensitively.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
