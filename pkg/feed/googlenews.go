package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcdole/gofeed"
)

const defaultTimeout = 5 * time.Second

// Locale pins the feed edition so results stay consistent across queries.
type Locale struct {
	Lang    string
	Country string
	Edition string
}

func DefaultLocale() Locale {
	return Locale{Lang: "en-US", Country: "US", Edition: "US:en"}
}

// GoogleNewsClient searches the Google News RSS endpoint. No authentication.
type GoogleNewsClient struct {
	baseURL string
	locale  Locale
	parser  *gofeed.Parser
}

func NewGoogleNewsClient(locale Locale) *GoogleNewsClient {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: defaultTimeout}

	return &GoogleNewsClient{
		baseURL: "https://news.google.com/rss/search",
		locale:  locale,
		parser:  parser,
	}
}

func (c *GoogleNewsClient) Search(ctx context.Context, query string) ([]Entry, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("hl", c.locale.Lang)
	params.Set("gl", c.locale.Country)
	params.Set("ceid", c.locale.Edition)

	parsed, err := c.parser.ParseURLWithContext(c.baseURL+"?"+params.Encode(), ctx)
	if err != nil {
		return nil, fmt.Errorf("google news search %q: %w", query, err)
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil || item.Title == "" {
			continue
		}
		entries = append(entries, Entry{Title: item.Title, Link: item.Link})
	}

	return entries, nil
}
