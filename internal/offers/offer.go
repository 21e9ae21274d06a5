package offers

// Agency identifies the travel agency an offer was extracted from.
type Agency string

const (
	AgencyMakalius Agency = "Makalius"
	AgencyAirGuru  Agency = "AirGuru"
	AgencyTezTour  Agency = "TezTour"
)

// Offer is the transient record a source adapter produces for one travel
// package. It lives only for the duration of a single aggregation run;
// persistence happens through StoredOffer.
type Offer struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Agency      Agency `json:"agency"`
	URL         string `json:"url"`
	Country     string `json:"country"`
}

// Valid reports whether the offer carries every field downstream consumers
// rely on. Sentinel records emitted on item-level parse failures are
// name-only and fail this check, which is how they get filtered out before
// sorting.
func (o Offer) Valid() bool {
	return o.Name != "" && o.Price != "" && o.Description != ""
}

// StoredOffer is the persisted form of an offer. Price stays the verbatim
// display string; ranking always goes through NormalizePrice.
type StoredOffer struct {
	ID          int64  `json:"id"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Agency      Agency `json:"agency"`
	URL         string `json:"url"`
}
