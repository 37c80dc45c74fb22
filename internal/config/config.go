package config

import (
	"fmt"
	"os"
	"time"
)

// Config is built once at startup and passed explicitly into the pipeline
// constructors. Nothing reads ambient globals after this point.
type Config struct {
	BindAddr    string
	FrontendURL string

	LLMProvider string
	LLMTier     string
	KeyFile     string

	FeedLang    string
	FeedCountry string
	FeedEdition string
	FeedTimeout time.Duration

	GenTimeout time.Duration

	SnapshotTTL   time.Duration
	RedisURL      string
	FinnhubAPIKey string
}

func Load() (*Config, error) {
	c := &Config{
		BindAddr:      getEnv("BIND_ADDR", ":8080"),
		FrontendURL:   os.Getenv("FRONTEND_URL"),
		LLMProvider:   getEnv("LLM_PROVIDER", "gemini"),
		LLMTier:       getEnv("LLM_TIER", "flash"),
		KeyFile:       getEnv("LLM_KEY_FILE", "APP_key.txt"),
		FeedLang:      getEnv("FEED_LANG", "en-US"),
		FeedCountry:   getEnv("FEED_COUNTRY", "US"),
		FeedEdition:   getEnv("FEED_EDITION", "US:en"),
		FeedTimeout:   getDuration("FEED_TIMEOUT", "5s"),
		GenTimeout:    getDuration("GEN_TIMEOUT", "60s"),
		SnapshotTTL:   getDuration("SNAPSHOT_TTL", "6h"),
		RedisURL:      os.Getenv("REDIS_URL"),
		FinnhubAPIKey: os.Getenv("FINNHUB_API_KEY"),
	}

	switch c.LLMProvider {
	case "gemini", "openai", "anthropic":
	default:
		return nil, fmt.Errorf("LLM_PROVIDER must be one of gemini, openai, anthropic, got %q", c.LLMProvider)
	}

	switch c.LLMTier {
	case "flash", "pro":
	default:
		return nil, fmt.Errorf("LLM_TIER must be flash or pro, got %q", c.LLMTier)
	}

	if c.FeedTimeout <= 0 {
		return nil, fmt.Errorf("FEED_TIMEOUT must be positive")
	}
	if c.GenTimeout <= 0 {
		return nil, fmt.Errorf("GEN_TIMEOUT must be positive")
	}
	if c.SnapshotTTL <= 0 {
		return nil, fmt.Errorf("SNAPSHOT_TTL must be positive")
	}

	return c, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key, fallback string) time.Duration {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
