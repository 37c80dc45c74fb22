package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/euntae-kim/stock-ai-dashboard/internal/analysis"
	"github.com/euntae-kim/stock-ai-dashboard/internal/cache"
	"github.com/euntae-kim/stock-ai-dashboard/internal/config"
	"github.com/euntae-kim/stock-ai-dashboard/internal/handler"
	"github.com/euntae-kim/stock-ai-dashboard/internal/model"
	"github.com/euntae-kim/stock-ai-dashboard/internal/series"
	"github.com/euntae-kim/stock-ai-dashboard/pkg/feed"
	"github.com/euntae-kim/stock-ai-dashboard/pkg/llm"
	"github.com/euntae-kim/stock-ai-dashboard/pkg/market"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

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

	var snapshotCache cache.SnapshotCache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer redisCache.Close()
		snapshotCache = redisCache
	} else {
		snapshotCache = cache.NewMemoryCache()
	}

	var quoteClients []market.QuoteClient
	if cfg.FinnhubAPIKey != "" {
		quoteClients = append(quoteClients, market.NewFinnhubClient(cfg.FinnhubAPIKey))
	}
	quoteClients = append(quoteClients, market.NewStooqClient())

	marketService := series.NewService(quoteClients, snapshotCache, model.DefaultInstruments(), cfg.SnapshotTTL)

	dashboardHandler := handler.NewDashboardHandler(marketService)
	analysisHandler := handler.NewAnalysisHandler(pipeline, llm.Tier(cfg.LLMTier))

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/dashboard/performance", dashboardHandler.GetPerformance)
	r.GET("/dashboard/windows", dashboardHandler.GetWindows)
	r.POST("/analysis/run", analysisHandler.RunAnalysis)
	r.GET("/categories", analysisHandler.GetCategories)
	r.GET("/models", analysisHandler.GetModels)
	r.GET("/health", analysisHandler.GetHealth)

	err = r.Run(cfg.BindAddr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
