// Package indextest provides an in-memory index.Index for tests.
package indextest

import (
	"context"

	"github.com/doadrianh/bigspring-ai-take-home/internal/index"
)

// Fake returns canned hits per collection and records every query. When Err
// is set, queries fail starting at the zero-based ErrAfter offset, so a test
// can let an initial retrieval succeed and fail a later one.
type Fake struct {
	HitsByCollection map[string][]index.Hit
	Err              error
	ErrAfter         int
	Queries          []index.Query
}

func NewFake() *Fake {
	return &Fake{HitsByCollection: map[string][]index.Hit{}}
}

func (f *Fake) Query(ctx context.Context, q index.Query) ([]index.Hit, error) {
	f.Queries = append(f.Queries, q)
	if f.Err != nil && len(f.Queries) > f.ErrAfter {
		return nil, f.Err
	}

	// Honor the scope filter the way the real index does.
	allowed := make(map[string]bool, len(q.AssetIDs))
	for _, id := range q.AssetIDs {
		allowed[id] = true
	}
	var hits []index.Hit
	for _, h := range f.HitsByCollection[q.Collection] {
		if !allowed[h.Meta.AssetID] {
			continue
		}
		if q.CompanyID != "" && h.Meta.CompanyID != q.CompanyID {
			continue
		}
		if q.UserID != "" && h.Meta.UserID != q.UserID {
			continue
		}
		hits = append(hits, h)
		if q.TopK > 0 && len(hits) == q.TopK {
			break
		}
	}
	return hits, nil
}
