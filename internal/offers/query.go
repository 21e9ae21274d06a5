package offers

import "context"

// ReadStore is the read-side persistence contract. Implementations return
// rows as stored; completeness filtering happens in the QueryService.
type ReadStore interface {
	ListByCountryCode(ctx context.Context, code string) ([]StoredOffer, error)
	ListAll(ctx context.Context) ([]StoredOffer, error)
}

// QueryService serves read-only offer lookups.
type QueryService struct {
	store ReadStore
}

func NewQueryService(store ReadStore) *QueryService {
	return &QueryService{store: store}
}

// complete reports whether a stored row is servable. Legacy rows written
// without an agency or url are treated as incomplete and hidden; an empty
// country code alone does not disqualify a row.
func complete(o StoredOffer) bool {
	return o.Agency != "" && o.URL != ""
}

// OffersByCountryCode lists stored offers for one ISO country code,
// excluding incomplete rows.
func (q *QueryService) OffersByCountryCode(ctx context.Context, code string) ([]StoredOffer, error) {
	rows, err := q.store.ListByCountryCode(ctx, code)
	if err != nil {
		return nil, err
	}
	out := make([]StoredOffer, 0, len(rows))
	for _, o := range rows {
		if complete(o) {
			out = append(out, o)
		}
	}
	return out, nil
}

// TotalsByCountryCode counts complete stored offers per country code across
// the whole store. Offers whose country name missed the lookup table are
// counted under the empty-string code.
func (q *QueryService) TotalsByCountryCode(ctx context.Context) (map[string]int, error) {
	rows, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]int)
	for _, o := range rows {
		if complete(o) {
			totals[o.CountryCode]++
		}
	}
	return totals, nil
}
