package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/keliauta/tripoffers/internal/aggregate"
	"github.com/keliauta/tripoffers/internal/api"
	"github.com/keliauta/tripoffers/internal/config"
	"github.com/keliauta/tripoffers/internal/logger"
	"github.com/keliauta/tripoffers/internal/offers"
	"github.com/keliauta/tripoffers/internal/scrape"
	"github.com/keliauta/tripoffers/internal/store"
)

func main() {
	_ = godotenv.Load()

	log := logger.New("tripoffers")
	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	st, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Error("open offer store", slog.Any("err", err))
		os.Exit(1)
	}
	defer st.Close()

	fetcher := scrape.NewHTTPFetcher(cfg.FetchTimeout)
	renderer := scrape.NewChromeRenderer(cfg.RenderWait)
	adapters := []scrape.Adapter{
		scrape.NewMakalius(cfg.MakaliusBaseURL, fetcher, log),
		scrape.NewAirGuru(cfg.AirGuruBaseURL, fetcher, log),
		scrape.NewTezTour(cfg.TezTourBaseURL, renderer, log),
	}

	agg := aggregate.New(adapters, cfg.RunDeadline, log)
	srv := api.NewServer(log, agg, storeRuns{st}, offers.NewQueryService(st))

	httpServer := &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// Scrape runs can legitimately take the whole run deadline.
		WriteTimeout: cfg.RunDeadline + 15*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go func() {
		log.Info("server starting", slog.String("addr", cfg.BindAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", slog.Any("err", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", slog.Any("err", err))
	}
}

// storeRuns adapts the concrete SQLite store to the API's store contract.
type storeRuns struct {
	s *store.Offers
}

func (b storeRuns) Begin(ctx context.Context) (offers.Store, error) {
	return b.s.Begin(ctx)
}
