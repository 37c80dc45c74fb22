package market

import (
	"context"
	"time"
)

// Bar is one daily closing price.
type Bar struct {
	Date  time.Time
	Close float64
}

// QuoteClient fetches the daily closing-price series for one symbol. Callers
// isolate failures per symbol: a failed series is skipped, never fatal.
type QuoteClient interface {
	DailyCloses(ctx context.Context, symbol string, from, to time.Time) ([]Bar, error)
	Name() string
}
