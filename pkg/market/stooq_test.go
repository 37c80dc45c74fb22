package market

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

const stooqCSV = `Date,Open,High,Low,Close,Volume
2026-08-26,560.1,563.2,559.0,562.5,1000000
2026-08-27,562.5,565.0,561.0,564.0,900000
2026-08-28,564.0,566.3,563.1,565.2,800000
`

func newTestStooq(srv *httptest.Server) *StooqClient {
	return &StooqClient{
		baseURL:    srv.URL,
		httpClient: srv.Client(),
	}
}

func TestStooqDailyCloses(t *testing.T) {
	var gotSymbol string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSymbol = r.URL.Query().Get("s")
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(stooqCSV))
	}))
	defer srv.Close()

	from := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	bars, err := newTestStooq(srv).DailyCloses(context.Background(), "SPY", from, to)

	assert.Equal(t, nil, err)
	assert.Equal(t, "spy", gotSymbol)
	assert.Equal(t, 3, len(bars))
	assert.Equal(t, 562.5, bars[0].Close)
	assert.Equal(t, time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC), bars[0].Date)
	assert.Equal(t, 565.2, bars[2].Close)
}

func TestStooqNoRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Date,Open,High,Low,Close,Volume\n"))
	}))
	defer srv.Close()

	_, err := newTestStooq(srv).DailyCloses(context.Background(), "SPY", time.Now().AddDate(0, -1, 0), time.Now())

	assert.NotEqual(t, nil, err)
}

func TestStooqServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestStooq(srv).DailyCloses(context.Background(), "SPY", time.Now().AddDate(0, -1, 0), time.Now())

	assert.NotEqual(t, nil, err)
}
