package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/euntae-kim/stock-ai-dashboard/internal/model"
	"github.com/euntae-kim/stock-ai-dashboard/pkg/feed"
)

const defaultSearchTimeout = 5 * time.Second

// Resolver runs one category's query set against the news feed and always
// produces exactly one resolution. It never returns an error.
type Resolver struct {
	searcher feed.Searcher
	timeout  time.Duration
}

func NewResolver(searcher feed.Searcher, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = defaultSearchTimeout
	}
	return &Resolver{searcher: searcher, timeout: timeout}
}

// Resolve tries each query in order and stops at the first one returning at
// least one entry, taking its first entry. A transport failure counts as "no
// hit" for continuation purposes, but when every attempt failed that way the
// resolution is Unreachable rather than NotFound, so the two cases can carry
// different user-facing text.
func (r *Resolver) Resolve(ctx context.Context, category model.Category) model.Resolution {
	attempts := 0
	failures := 0
	lastQuery := ""

	for _, query := range category.Queries {
		attempts++
		lastQuery = query

		searchCtx, cancel := context.WithTimeout(ctx, r.timeout)
		entries, err := r.searcher.Search(searchCtx, query)
		cancel()

		if err != nil {
			slog.Warn("news search failed", "category", category.Label, "query", query, "error", err)
			failures++
			continue
		}

		if len(entries) == 0 {
			continue
		}

		return model.Resolution{
			Status: model.ResolutionFound,
			Item:   model.NewsItem{Title: entries[0].Title, Link: entries[0].Link},
			Query:  query,
		}
	}

	status := model.ResolutionNotFound
	if attempts > 0 && failures == attempts {
		status = model.ResolutionUnreachable
	}

	return model.Resolution{Status: status, Query: lastQuery}
}
