// Package aggregate fans an aggregation run out over the configured source
// adapters and merges their output into one price-ranked sequence.
package aggregate

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/keliauta/tripoffers/internal/offers"
	"github.com/keliauta/tripoffers/internal/scrape"
)

// Aggregator runs every configured adapter for a country and merges the
// results. Adapter order is fixed at construction; the merged sequence
// always concatenates in that order before sorting, so runs are
// reproducible regardless of which adapter finishes first.
type Aggregator struct {
	adapters []scrape.Adapter
	deadline time.Duration
	log      *slog.Logger
}

func New(adapters []scrape.Adapter, deadline time.Duration, log *slog.Logger) *Aggregator {
	return &Aggregator{
		adapters: adapters,
		deadline: deadline,
		log:      log,
	}
}

// Run fetches offers from all adapters concurrently under one deadline,
// concatenates their outputs in adapter order, drops records that fail the
// validity check (sentinels included), and stable-sorts the rest ascending
// by normalized price so equal-priced offers keep their merge order.
//
// A source that fails, panics, or runs out the deadline contributes nothing
// to the merge; it never fails the run. An empty result is success.
func (a *Aggregator) Run(ctx context.Context, country string) []offers.Offer {
	ctx, cancel := context.WithTimeout(ctx, a.deadline)
	defer cancel()

	slots := make([][]offers.Offer, len(a.adapters))
	var wg sync.WaitGroup

	for i, adapter := range a.adapters {
		wg.Add(1)
		go func(i int, adapter scrape.Adapter) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					a.log.Error("source panicked", "agency", adapter.Agency(), "panic", r)
				}
			}()

			fetched, err := adapter.FetchOffers(ctx, country)
			if err != nil {
				a.log.Error("source failed", "agency", adapter.Agency(), "err", err)
				return
			}
			slots[i] = fetched
		}(i, adapter)
	}
	wg.Wait()

	merged := make([]offers.Offer, 0)
	for _, slot := range slots {
		for _, o := range slot {
			if o.Valid() {
				merged = append(merged, o)
			}
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return offers.NormalizePrice(merged[i].Price) < offers.NormalizePrice(merged[j].Price)
	})
	return merged
}
