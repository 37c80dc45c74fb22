package cache

import (
	"context"
	"time"

	"github.com/euntae-kim/stock-ai-dashboard/internal/model"
)

// SnapshotCache holds the raw aligned price table between requests. Get
// returns (nil, nil) on a miss. Keys embed the fetch date, so an entry is
// never served for a different day even if its TTL outlives midnight.
type SnapshotCache interface {
	Get(ctx context.Context, key string) (*model.PriceTable, error)
	Set(ctx context.Context, key string, table *model.PriceTable, ttl time.Duration) error
}

// Key builds the snapshot cache key for one fetch date.
func Key(day time.Time) string {
	return "dashboard:snapshot:" + day.Format("2006-01-02")
}
