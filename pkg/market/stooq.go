package market

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// StooqClient pulls daily close CSVs from the public Stooq endpoint. No
// authentication, so it doubles as the no-key fallback provider.
type StooqClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewStooqClient() *StooqClient {
	return &StooqClient{
		baseURL:    "https://stooq.com/q/d/l/",
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *StooqClient) Name() string {
	return "Stooq"
}

func (c *StooqClient) DailyCloses(ctx context.Context, symbol string, from, to time.Time) ([]Bar, error) {
	params := url.Values{}
	params.Set("s", strings.ToLower(symbol))
	params.Set("d1", from.Format("20060102"))
	params.Set("d2", to.Format("20060102"))
	params.Set("i", "d")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("stooq request %s: %w", symbol, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stooq fetch %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stooq fetch %s: unexpected status %d", symbol, resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("stooq decode %s: %w", symbol, err)
	}

	var bars []Bar
	for i, rec := range records {
		if i == 0 || len(rec) < 5 {
			continue
		}

		date, err := time.Parse("2006-01-02", rec[0])
		if err != nil {
			continue
		}

		closeVal, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			continue
		}

		bars = append(bars, Bar{Date: date, Close: closeVal})
	}

	if len(bars) == 0 {
		return nil, fmt.Errorf("stooq %s: no data rows in response", symbol)
	}

	return bars, nil
}
