package market

import (
	"context"
	"fmt"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

func (c *FinnhubClient) DailyCloses(ctx context.Context, symbol string, from, to time.Time) ([]Bar, error) {
	res, _, err := c.client.StockCandles(ctx).
		Symbol(symbol).
		Resolution("D").
		From(from.Unix()).
		To(to.Unix()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("finnhub candles %s: %w", symbol, err)
	}

	if res.GetS() != "ok" {
		return nil, fmt.Errorf("finnhub candles %s: status %q", symbol, res.GetS())
	}

	closes := res.GetC()
	stamps := res.GetT()
	if len(closes) != len(stamps) {
		return nil, fmt.Errorf("finnhub candles %s: mismatched response lengths", symbol)
	}

	bars := make([]Bar, 0, len(closes))
	for i := range closes {
		ts := time.Unix(stamps[i], 0).UTC()
		bars = append(bars, Bar{
			Date:  time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC),
			Close: float64(closes[i]),
		})
	}

	return bars, nil
}
