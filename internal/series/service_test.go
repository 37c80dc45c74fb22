package series

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"github.com/euntae-kim/stock-ai-dashboard/internal/cache"
	"github.com/euntae-kim/stock-ai-dashboard/internal/model"
	"github.com/euntae-kim/stock-ai-dashboard/pkg/market"
)

type fakeQuoteClient struct {
	bars    map[string][]market.Bar
	err     error
	fetches int
}

func (f *fakeQuoteClient) DailyCloses(ctx context.Context, symbol string, from, to time.Time) ([]market.Bar, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return f.bars[symbol], nil
}

func (f *fakeQuoteClient) Name() string {
	return "fake"
}

var testInstruments = []model.Instrument{
	{Name: model.DomesticInstrument, Symbol: "102110.KS"},
	{Name: "SPY (US S&P500)", Symbol: "SPY"},
	{Name: model.FXInstrument, Symbol: "KRW=X"},
}

func fixedNow() time.Time {
	return time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
}

func testBars(closes []float64) []market.Bar {
	bars := make([]market.Bar, len(closes))
	for i, c := range closes {
		bars[i] = market.Bar{Date: fixedNow().AddDate(0, 0, i-len(closes)+1), Close: c}
	}
	return bars
}

func newTestService(client market.QuoteClient) *Service {
	s := NewService([]market.QuoteClient{client}, cache.NewMemoryCache(), testInstruments, time.Hour)
	s.now = fixedNow
	return s
}

func TestSnapshotCachesFetch(t *testing.T) {
	client := &fakeQuoteClient{
		bars: map[string][]market.Bar{
			"102110.KS": testBars([]float64{100, 101}),
			"SPY":       testBars([]float64{500, 505}),
			"KRW=X":     testBars([]float64{1300, 1310}),
		},
	}
	s := newTestService(client)

	first, err := s.Snapshot(context.Background())
	assert.Equal(t, nil, err)
	fetchesAfterFirst := client.fetches

	second, err := s.Snapshot(context.Background())
	assert.Equal(t, nil, err)

	assert.Equal(t, fetchesAfterFirst, client.fetches)
	assert.Equal(t, first.Names, second.Names)
}

func TestSnapshotSkipsFailedSymbol(t *testing.T) {
	client := &fakeQuoteClient{
		bars: map[string][]market.Bar{
			"SPY":   testBars([]float64{500, 505}),
			"KRW=X": testBars([]float64{1300, 1310}),
			// 102110.KS missing: provider returns no data for it
		},
	}
	s := newTestService(client)

	table, err := s.Snapshot(context.Background())
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"SPY (US S&P500)", model.FXInstrument}, table.Names)
}

func TestSnapshotNoDataAtAll(t *testing.T) {
	client := &fakeQuoteClient{err: errors.New("provider down")}
	s := newTestService(client)

	_, err := s.Snapshot(context.Background())
	assert.Equal(t, true, errors.Is(err, ErrNoData))
}

func TestPerformanceBadWindow(t *testing.T) {
	s := newTestService(&fakeQuoteClient{})

	_, err := s.Performance(context.Background(), "2y", false)
	assert.Equal(t, true, errors.Is(err, ErrBadWindow))
}

func TestPerformanceNormalizesAndDropsFX(t *testing.T) {
	client := &fakeQuoteClient{
		bars: map[string][]market.Bar{
			"102110.KS": testBars([]float64{13000, 14300}),
			"SPY":       testBars([]float64{500, 505}),
			"KRW=X":     testBars([]float64{1300, 1300}),
		},
	}
	s := newTestService(client)

	report, err := s.Performance(context.Background(), "1w", true)
	assert.Equal(t, nil, err)

	assert.Equal(t, []string{model.DomesticInstrument, "SPY (US S&P500)"}, report.Table.Names)

	// 13000/1300=10 -> 14300/1300=11, normalized to 1000 -> 1100.
	assert.Equal(t, []float64{1000, 1100}, report.Table.Columns[model.DomesticInstrument])
	assert.Equal(t, []float64{1000, 1010}, report.Table.Columns["SPY (US S&P500)"])

	assert.Equal(t, 2, len(report.Metrics))
	assert.Equal(t, model.DomesticInstrument, report.Metrics[0].Name)
	assert.Equal(t, 1100.0, report.Metrics[0].Final)
	assert.Equal(t, 100.0, report.Metrics[0].Delta)
}

func TestPerformanceWithoutUSDBase(t *testing.T) {
	client := &fakeQuoteClient{
		bars: map[string][]market.Bar{
			"102110.KS": testBars([]float64{13000, 14300}),
			"SPY":       testBars([]float64{500, 505}),
			"KRW=X":     testBars([]float64{1300, 1400}),
		},
	}
	s := newTestService(client)

	report, err := s.Performance(context.Background(), "1w", false)
	assert.Equal(t, nil, err)

	// No conversion: 14300/13000 * 1000 = 1100 regardless of the FX move.
	assert.Equal(t, []float64{1000, 1100}, report.Table.Columns[model.DomesticInstrument])
}
