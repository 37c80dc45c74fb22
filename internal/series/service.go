package series

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/euntae-kim/stock-ai-dashboard/internal/cache"
	"github.com/euntae-kim/stock-ai-dashboard/internal/model"
	"github.com/euntae-kim/stock-ai-dashboard/pkg/market"
)

var (
	// ErrNoData means not a single instrument series could be fetched.
	ErrNoData = errors.New("no market data available")
	// ErrBadWindow means the requested trailing window is not one of the
	// discrete choices.
	ErrBadWindow = errors.New("unknown window")
)

const defaultLookbackDays = 365

// Service fetches the raw instrument snapshot, caches it under a
// date-of-fetch key, and derives normalized performance views from it.
type Service struct {
	clients     []market.QuoteClient
	cache       cache.SnapshotCache
	instruments []model.Instrument
	ttl         time.Duration
	lookback    int
	now         func() time.Time
}

func NewService(clients []market.QuoteClient, snapshotCache cache.SnapshotCache, instruments []model.Instrument, ttl time.Duration) *Service {
	return &Service{
		clients:     clients,
		cache:       snapshotCache,
		instruments: instruments,
		ttl:         ttl,
		lookback:    defaultLookbackDays,
		now:         time.Now,
	}
}

// Snapshot returns the raw aligned table, fetching when the cache has no
// entry for today. Cache failures degrade to a fresh fetch, never an error.
func (s *Service) Snapshot(ctx context.Context) (*model.PriceTable, error) {
	key := cache.Key(s.now())

	table, err := s.cache.Get(ctx, key)
	if err != nil {
		slog.Warn("snapshot cache read failed", "error", err)
	} else if table != nil {
		return table, nil
	}

	table = s.fetch(ctx)
	if len(table.Names) == 0 {
		return nil, ErrNoData
	}

	if err := s.cache.Set(ctx, key, table, s.ttl); err != nil {
		slog.Warn("snapshot cache write failed", "error", err)
	}

	return table, nil
}

// Performance builds the "$1,000 invested" comparison for one trailing
// window. The FX column participates in conversion but is never charted.
func (s *Service) Performance(ctx context.Context, window string, usdBase bool) (*model.PerformanceReport, error) {
	days, ok := WindowDays(window)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadWindow, window)
	}

	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	table := TrimWindow(snapshot, days)
	if usdBase {
		table = ConvertToUSD(table, model.DomesticInstrument, model.FXInstrument)
	}
	table = Drop(table, model.FXInstrument)
	table = Normalize(table, Notional)

	report := &model.PerformanceReport{
		Window:  window,
		USDBase: usdBase,
		Table:   *table,
	}

	for _, name := range table.Names {
		values := table.Columns[name]
		if len(values) == 0 {
			continue
		}
		final := values[len(values)-1]
		report.Metrics = append(report.Metrics, model.InstrumentValue{
			Name:  name,
			Final: final,
			Delta: final - Notional,
		})
	}

	return report, nil
}

func (s *Service) fetch(ctx context.Context) *model.PriceTable {
	to := s.now()
	from := to.AddDate(0, 0, -s.lookback)

	order := make([]string, 0, len(s.instruments))
	bars := make(map[string][]market.Bar, len(s.instruments))

	for _, inst := range s.instruments {
		order = append(order, inst.Name)

		bs, err := s.fetchSymbol(ctx, inst.Symbol, from, to)
		if err != nil {
			// One symbol's failure must not abort the others.
			slog.Error("error fetching series", "instrument", inst.Name, "symbol", inst.Symbol, "error", err)
			continue
		}
		bars[inst.Name] = bs
	}

	return Align(order, bars)
}

func (s *Service) fetchSymbol(ctx context.Context, symbol string, from, to time.Time) ([]market.Bar, error) {
	var lastErr error
	for _, client := range s.clients {
		bars, err := client.DailyCloses(ctx, symbol, from, to)
		if err != nil {
			slog.Warn("quote provider failed", "provider", client.Name(), "symbol", symbol, "error", err)
			lastErr = err
			continue
		}
		if len(bars) > 0 {
			return bars, nil
		}
	}

	if lastErr == nil {
		lastErr = errors.New("no provider returned data")
	}
	return nil, lastErr
}
