package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/euntae-kim/stock-ai-dashboard/internal/cache"
	"github.com/euntae-kim/stock-ai-dashboard/internal/config"
	"github.com/euntae-kim/stock-ai-dashboard/internal/model"
	"github.com/euntae-kim/stock-ai-dashboard/internal/series"
	"github.com/euntae-kim/stock-ai-dashboard/pkg/market"
)

// One-shot warmer: fetches today's market snapshot into the shared cache and
// prints the default performance view. Meant to run on a schedule so the
// first dashboard request of the day is served from cache.
func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	if cfg.RedisURL == "" {
		log.Fatalf("REDIS_URL must be set: an in-memory cache cannot be warmed from another process")
	}

	snapshotCache, err := cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer snapshotCache.Close()

	var quoteClients []market.QuoteClient
	if cfg.FinnhubAPIKey != "" {
		quoteClients = append(quoteClients, market.NewFinnhubClient(cfg.FinnhubAPIKey))
	}
	quoteClients = append(quoteClients, market.NewStooqClient())

	marketService := series.NewService(quoteClients, snapshotCache, model.DefaultInstruments(), cfg.SnapshotTTL)

	report, err := marketService.Performance(context.Background(), "3m", true)
	if err != nil {
		log.Fatalf("error building snapshot: %v", err)
	}

	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("error encoding report: %v", err)
	}

	fmt.Println(string(out))

	slog.Info("snapshot complete", "instruments", len(report.Metrics), "days", len(report.Table.Dates))
}
