// Package api exposes the aggregation pipeline and the read-side lookups
// over HTTP. It is a thin shell: request validation and serialization live
// here, everything else is delegated.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/keliauta/tripoffers/internal/offers"
)

// Aggregator produces the merged, sorted offer list for a country.
type Aggregator interface {
	Run(ctx context.Context, country string) []offers.Offer
}

// OfferStore hands out one write run per aggregation.
type OfferStore interface {
	Begin(ctx context.Context) (offers.Store, error)
}

// Server wires the HTTP surface.
type Server struct {
	log   *slog.Logger
	agg   Aggregator
	store OfferStore
	query *offers.QueryService
}

func NewServer(log *slog.Logger, agg Aggregator, store OfferStore, query *offers.QueryService) *Server {
	return &Server{log: log, agg: agg, store: store, query: query}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.Get("/health", s.handleHealth)
	r.Post("/scrape", s.handleScrape)
	r.Get("/offers/{countryCode}", s.handleOffersByCode)
	r.Get("/total_offers/all", s.handleTotals)
	return r
}

type scrapeRequest struct {
	Country string `json:"country"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScrape runs a full aggregation: fan out to all sources, merge and
// sort, persist new offers, return the merged list. Missing country is the
// caller's error; everything the sources do wrong is not.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Country) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"status":  "error",
			"message": "Missing country parameter",
		})
		return
	}

	runID := uuid.NewString()
	w.Header().Set("X-Run-ID", runID)
	log := s.log.With("run_id", runID, "country", req.Country)

	merged := s.agg.Run(r.Context(), req.Country)
	if len(merged) == 0 {
		log.Info("aggregation produced no offers")
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "success",
			"message": "No results",
		})
		return
	}

	run, err := s.store.Begin(r.Context())
	if err != nil {
		log.Error("open store run", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "Failed to store offers",
		})
		return
	}

	results, inserted, err := offers.Persist(r.Context(), log, run, merged, req.Country)
	if err != nil {
		log.Error("persist offers", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "Failed to store offers",
		})
		return
	}

	log.Info("aggregation complete", "count", len(results), "inserted", inserted)
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"results": results,
		"count":   len(results),
	})
}

func (s *Server) handleOffersByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "countryCode")

	result, err := s.query.OffersByCountryCode(r.Context(), code)
	if err != nil {
		s.log.Error("list offers", "country_code", code, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "Failed to list offers",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"results": result,
		"count":   len(result),
	})
}

func (s *Server) handleTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := s.query.TotalsByCountryCode(r.Context())
	if err != nil {
		s.log.Error("count offers", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status":  "error",
			"message": "Failed to count offers",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"results": totals,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
