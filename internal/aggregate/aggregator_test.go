package aggregate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keliauta/tripoffers/internal/offers"
	"github.com/keliauta/tripoffers/internal/scrape"
)

type stubAdapter struct {
	agency offers.Agency
	out    []offers.Offer
	err    error
	panics bool
	blocks bool
}

func (s stubAdapter) Agency() offers.Agency { return s.agency }

func (s stubAdapter) FetchOffers(ctx context.Context, _ string) ([]offers.Offer, error) {
	if s.panics {
		panic("adapter blew up")
	}
	if s.blocks {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.out, s.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func offer(name, price string, agency offers.Agency) offers.Offer {
	return offers.Offer{
		Name:        name,
		Price:       price,
		Description: "aprašymas",
		Agency:      agency,
		URL:         "https://" + string(agency) + ".test/" + name,
	}
}

func newAggregator(adapters ...scrape.Adapter) *Aggregator {
	return New(adapters, time.Second, testLogger())
}

func TestRunMergesAndSortsByNormalizedPrice(t *testing.T) {
	agg := newAggregator(
		stubAdapter{agency: offers.AgencyMakalius},
		stubAdapter{agency: offers.AgencyAirGuru, out: []offers.Offer{offer("A", "500€", offers.AgencyAirGuru)}},
		stubAdapter{agency: offers.AgencyTezTour, out: []offers.Offer{offer("B", "300€", offers.AgencyTezTour)}},
	)

	got := agg.Run(context.Background(), "Italija")

	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].Name)
	assert.Equal(t, "A", got[1].Name)
}

func TestRunSortIsNonDecreasingForAnyAdapterPermutation(t *testing.T) {
	a := offer("a", "1.299 €", offers.AgencyMakalius)
	b := offer("b", "850€", offers.AgencyMakalius)
	c := offer("c", "kaina nuo 499€", offers.AgencyAirGuru)
	d := offer("d", "2100€", offers.AgencyTezTour)

	perms := [][][]offers.Offer{
		{{a, b}, {c}, {d}},
		{{d}, {a, b}, {c}},
		{{c}, {d}, {b, a}},
	}

	for _, perm := range perms {
		agg := newAggregator(
			stubAdapter{agency: offers.AgencyMakalius, out: perm[0]},
			stubAdapter{agency: offers.AgencyAirGuru, out: perm[1]},
			stubAdapter{agency: offers.AgencyTezTour, out: perm[2]},
		)
		got := agg.Run(context.Background(), "Italija")

		require.Len(t, got, 4)
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t,
				offers.NormalizePrice(got[i-1].Price),
				offers.NormalizePrice(got[i].Price))
		}
	}
}

func TestRunStableSortKeepsMergeOrderForEqualPrices(t *testing.T) {
	// Same normalized price, distinct names: the merge order (adapter
	// order, then within-adapter order) must survive the sort.
	first := offer("first", "500€", offers.AgencyMakalius)
	second := offer("second", "kaina nuo 500€", offers.AgencyMakalius)
	third := offer("third", "500 €", offers.AgencyAirGuru)

	agg := newAggregator(
		stubAdapter{agency: offers.AgencyMakalius, out: []offers.Offer{first, second}},
		stubAdapter{agency: offers.AgencyAirGuru, out: []offers.Offer{third}},
		stubAdapter{agency: offers.AgencyTezTour},
	)

	got := agg.Run(context.Background(), "Italija")

	require.Len(t, got, 3)
	assert.Equal(t, []string{"first", "second", "third"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestRunDropsInvalidAndSentinelRecords(t *testing.T) {
	agg := newAggregator(
		stubAdapter{agency: offers.AgencyMakalius, out: []offers.Offer{
			offer("ok", "400€", offers.AgencyMakalius),
			{Name: "Name not found"},
			{Name: "no price", Description: "d", Agency: offers.AgencyMakalius},
			{Price: "100€", Description: "d", Agency: offers.AgencyMakalius},
		}},
	)

	got := agg.Run(context.Background(), "Italija")

	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Name)
}

func TestRunAllSourcesEmptyIsSuccess(t *testing.T) {
	agg := newAggregator(
		stubAdapter{agency: offers.AgencyMakalius},
		stubAdapter{agency: offers.AgencyAirGuru},
		stubAdapter{agency: offers.AgencyTezTour},
	)

	got := agg.Run(context.Background(), "Italija")

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRunIsolatesFailingSources(t *testing.T) {
	agg := newAggregator(
		stubAdapter{agency: offers.AgencyMakalius, err: errors.New("site unreachable")},
		stubAdapter{agency: offers.AgencyAirGuru, panics: true},
		stubAdapter{agency: offers.AgencyTezTour, out: []offers.Offer{offer("survivor", "700€", offers.AgencyTezTour)}},
	)

	got := agg.Run(context.Background(), "Italija")

	require.Len(t, got, 1)
	assert.Equal(t, "survivor", got[0].Name)
}

func TestRunDeadlineCutsOffStalledSources(t *testing.T) {
	agg := New([]scrape.Adapter{
		stubAdapter{agency: offers.AgencyMakalius, blocks: true},
		stubAdapter{agency: offers.AgencyAirGuru, out: []offers.Offer{offer("fast", "350€", offers.AgencyAirGuru)}},
	}, 50*time.Millisecond, testLogger())

	start := time.Now()
	got := agg.Run(context.Background(), "Italija")

	assert.Less(t, time.Since(start), 2*time.Second, "a stalled source cannot block the run")
	require.Len(t, got, 1)
	assert.Equal(t, "fast", got[0].Name)
}
