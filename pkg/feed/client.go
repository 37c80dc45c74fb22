package feed

import "context"

// Entry is one news search hit. Only title and link survive; all other feed
// metadata is discarded.
type Entry struct {
	Title string
	Link  string
}

// Searcher runs one free-text query against a news feed. An empty slice with
// a nil error means the search worked and there is legitimately no news; a
// non-nil error means the feed could not be reached or parsed.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Entry, error)
}
