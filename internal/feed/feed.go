// Package feed reads the paper list the way the app's readers see it: the
// Redis feed cache when it holds a seeded copy, SQLite otherwise.
package feed

import (
	"context"
	"sort"

	"github.com/donavanyieh/Daily-Attention-UI/internal/cache"
	"github.com/donavanyieh/Daily-Attention-UI/internal/logging"
	"github.com/donavanyieh/Daily-Attention-UI/internal/models"
)

// Source says where a list came from.
type Source string

const (
	SourceCache  Source = "cache"
	SourceSQLite Source = "sqlite"
)

// Lister is the store read used on a cache miss.
type Lister interface {
	ListPapers(ctx context.Context, limit int) ([]models.Paper, error)
}

// Load returns papers newest date first, limited to limit when limit > 0.
// A cache error is logged and treated as a miss. c may be nil.
func Load(ctx context.Context, c cache.PaperCache, store Lister, limit int) ([]models.Paper, Source, error) {
	if c != nil {
		cached, ok, err := c.Get(ctx)
		if err != nil {
			logging.Errorf("[feed] cache read: %v", err)
		}
		if ok && cached != nil {
			return newestFirst(cached.Papers, limit), SourceCache, nil
		}
	}
	list, err := store.ListPapers(ctx, limit)
	if err != nil {
		return nil, SourceSQLite, err
	}
	return list, SourceSQLite, nil
}

// newestFirst applies the store's ordering (date desc, id asc) to a cached copy.
func newestFirst(in []models.Paper, limit int) []models.Paper {
	out := make([]models.Paper, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID < out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
