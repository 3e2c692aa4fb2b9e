package search

import (
	"context"

	"github.com/doadrianh/bigspring-ai-take-home/internal/store"
)

// ScopeResolver computes the asset-id sets a user may retrieve against.
// Every vector query is filtered by one of these scopes before it leaves the
// service.
type ScopeResolver struct {
	store store.Store
}

func NewScopeResolver(st store.Store) *ScopeResolver {
	return &ScopeResolver{store: st}
}

// KnowledgeScope returns the watch-rep asset ids across every play assigned
// to the user. Assignment status is not consulted: a completed play's
// materials stay searchable.
func (s *ScopeResolver) KnowledgeScope(ctx context.Context, userID string) ([]string, error) {
	playIDs, err := s.store.Plays().AssignedPlayIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(playIDs) == 0 {
		return nil, nil
	}
	return s.store.Reps().WatchAssetIDs(ctx, playIDs)
}

// HistoryScope returns the asset ids of the user's own submissions.
func (s *ScopeResolver) HistoryScope(ctx context.Context, userID string) ([]string, error) {
	return s.store.Submissions().AssetIDs(ctx, userID)
}
