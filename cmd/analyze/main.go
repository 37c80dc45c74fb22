package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/euntae-kim/stock-ai-dashboard/internal/analysis"
	"github.com/euntae-kim/stock-ai-dashboard/internal/config"
	"github.com/euntae-kim/stock-ai-dashboard/internal/model"
	"github.com/euntae-kim/stock-ai-dashboard/pkg/feed"
	"github.com/euntae-kim/stock-ai-dashboard/pkg/llm"
)

// One-shot runner: resolves and analyzes all four categories once and
// prints the results as JSON. Logs go to stderr so stdout stays parseable.
func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	apiKey := config.ResolveAPIKey(cfg.KeyFile, llm.KeyEnvVar(cfg.LLMProvider))
	if apiKey == "" {
		slog.Warn("no generation-service credential found, running without AI commentary")
	}

	generators, err := llm.NewGenerators(cfg.LLMProvider, apiKey)
	if err != nil {
		log.Fatalf("error building generators: %v", err)
	}

	searcher := feed.NewGoogleNewsClient(feed.Locale{
		Lang:    cfg.FeedLang,
		Country: cfg.FeedCountry,
		Edition: cfg.FeedEdition,
	})
	resolver := analysis.NewResolver(searcher, cfg.FeedTimeout)
	analyzer := analysis.NewAnalyzer(generators, cfg.GenTimeout)
	pipeline := analysis.NewPipeline(resolver, analyzer, model.DefaultCategories())

	tier := llm.Tier(cfg.LLMTier)
	results := pipeline.Run(context.Background(), tier)

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		log.Fatalf("error encoding results: %v", err)
	}

	fmt.Println(string(out))

	slog.Info("analysis complete", "tier", tier, "model", pipeline.ModelName(tier), "results", len(results))
}
