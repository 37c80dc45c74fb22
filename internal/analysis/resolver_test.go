package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/euntae-kim/stock-ai-dashboard/internal/model"
	"github.com/euntae-kim/stock-ai-dashboard/pkg/feed"
)

type searchOutcome struct {
	entries []feed.Entry
	err     error
}

type fakeSearcher struct {
	outcomes map[string]searchOutcome
	calls    []string
}

func (f *fakeSearcher) Search(ctx context.Context, query string) ([]feed.Entry, error) {
	f.calls = append(f.calls, query)
	outcome := f.outcomes[query]
	return outcome.entries, outcome.err
}

func testCategory(queries ...string) model.Category {
	return model.Category{Label: "US Equities", Queries: queries}
}

func TestResolveFirstHitWins(t *testing.T) {
	searcher := &fakeSearcher{outcomes: map[string]searchOutcome{
		"q1": {},
		"q2": {entries: []feed.Entry{
			{Title: "Markets rally", Link: "https://example.com/rally"},
			{Title: "Second story", Link: "https://example.com/second"},
		}},
		"q3": {entries: []feed.Entry{{Title: "Never reached", Link: "https://example.com/never"}}},
	}}
	r := NewResolver(searcher, 0)

	res := r.Resolve(context.Background(), testCategory("q1", "q2", "q3"))

	assert.Equal(t, model.ResolutionFound, res.Status)
	assert.Equal(t, "Markets rally", res.Item.Title)
	assert.Equal(t, "https://example.com/rally", res.Item.Link)
	assert.Equal(t, "q2", res.Query)
	// q1 tried once, q2 hit, q3 never attempted.
	assert.Equal(t, []string{"q1", "q2"}, searcher.calls)
}

func TestResolveAllEmpty(t *testing.T) {
	searcher := &fakeSearcher{outcomes: map[string]searchOutcome{
		"economy A": {},
		"economy B": {},
	}}
	r := NewResolver(searcher, 0)

	res := r.Resolve(context.Background(), testCategory("economy A", "economy B"))

	assert.Equal(t, model.ResolutionNotFound, res.Status)
	assert.Equal(t, []string{"economy A", "economy B"}, searcher.calls)
}

func TestResolveAllErrors(t *testing.T) {
	searcher := &fakeSearcher{outcomes: map[string]searchOutcome{
		"q1": {err: errors.New("connection refused")},
		"q2": {err: errors.New("connection refused")},
	}}
	r := NewResolver(searcher, 0)

	res := r.Resolve(context.Background(), testCategory("q1", "q2"))

	// All attempts failed at the transport level: this is not the same as
	// "no news today".
	assert.Equal(t, model.ResolutionUnreachable, res.Status)
}

func TestResolveMixedErrorAndEmpty(t *testing.T) {
	searcher := &fakeSearcher{outcomes: map[string]searchOutcome{
		"q1": {err: errors.New("timeout")},
		"q2": {},
	}}
	r := NewResolver(searcher, 0)

	res := r.Resolve(context.Background(), testCategory("q1", "q2"))

	// At least one query genuinely returned nothing, so the feed itself is
	// reachable and the category has no news.
	assert.Equal(t, model.ResolutionNotFound, res.Status)
}

func TestResolveErrorThenHit(t *testing.T) {
	searcher := &fakeSearcher{outcomes: map[string]searchOutcome{
		"q1": {err: errors.New("timeout")},
		"q2": {entries: []feed.Entry{{Title: "Recovered", Link: "https://example.com/ok"}}},
	}}
	r := NewResolver(searcher, 0)

	res := r.Resolve(context.Background(), testCategory("q1", "q2"))

	assert.Equal(t, model.ResolutionFound, res.Status)
	assert.Equal(t, "Recovered", res.Item.Title)
}
