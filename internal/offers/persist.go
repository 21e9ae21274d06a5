package offers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/keliauta/tripoffers/internal/countries"
)

// Store is the write-side persistence contract for one aggregation run.
// FindByURL must observe inserts made earlier in the same run. Rollback
// releases the run; it must be a no-op after a successful Commit so callers
// can defer it unconditionally.
type Store interface {
	FindByURL(ctx context.Context, url string) (*StoredOffer, error)
	Insert(ctx context.Context, offer *StoredOffer) error
	Commit(ctx context.Context) error
	Rollback() error
}

// Persist writes every merged offer whose source URL is not already in the
// store. The URL is the sole identity key: an offer stored under one country
// is skipped when the same URL shows up for another. All inserts commit
// together; a commit failure fails the whole run.
//
// The returned slice is the full merged list in stored shape, in input
// order. ID is the new row id for offers inserted by this run and 0 for
// offers that were already present. The int is the number of rows inserted.
func Persist(ctx context.Context, log *slog.Logger, store Store, merged []Offer, country string) ([]StoredOffer, int, error) {
	defer store.Rollback()

	code := countries.Code(country)
	results := make([]StoredOffer, 0, len(merged))
	inserted := 0

	for _, o := range merged {
		rec := StoredOffer{
			Country:     country,
			CountryCode: code,
			Name:        o.Name,
			Price:       o.Price,
			Description: o.Description,
			Agency:      o.Agency,
			URL:         o.URL,
		}

		existing, err := store.FindByURL(ctx, o.URL)
		if err != nil {
			return nil, 0, fmt.Errorf("find offer by url: %w", err)
		}
		if existing != nil {
			log.Debug("offer already stored, skipping insert",
				"url", o.URL, "stored_country", existing.Country)
			results = append(results, rec)
			continue
		}

		if err := store.Insert(ctx, &rec); err != nil {
			return nil, 0, fmt.Errorf("insert offer %s: %w", o.URL, err)
		}
		inserted++
		results = append(results, rec)
	}

	if err := store.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("commit offers: %w", err)
	}
	return results, inserted, nil
}
