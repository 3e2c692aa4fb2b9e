package search

import (
	"context"

	"github.com/doadrianh/bigspring-ai-take-home/internal/index"
	"github.com/doadrianh/bigspring-ai-take-home/internal/model"
	"github.com/doadrianh/bigspring-ai-take-home/internal/store"
)

const (
	// recommendationFetchWidth is the index fetch size before asset-level
	// dedupe; the returned list is capped at maxRecommendations.
	recommendationFetchWidth = 5
	maxRecommendations       = 3
)

// Recommender surfaces related training content from the user's knowledge
// scope. It is strictly best effort; callers treat any failure as an empty
// result.
type Recommender struct {
	scopes    *ScopeResolver
	retriever *Retriever
	store     store.Store
}

func NewRecommender(scopes *ScopeResolver, retriever *Retriever, st store.Store) *Recommender {
	return &Recommender{scopes: scopes, retriever: retriever, store: st}
}

// Recommend returns up to maxRecommendations suggestions, one per asset, in
// similarity order. Asset ids in exclude are removed from the search scope
// before the index is queried. Candidates without a resolvable asset or a
// linked rep are skipped; a missing play only blanks the play title.
func (r *Recommender) Recommend(ctx context.Context, query, userID, companyID string, exclude map[string]bool) ([]model.Recommendation, error) {
	scope, err := r.scopes.KnowledgeScope(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(exclude) > 0 {
		kept := scope[:0]
		for _, id := range scope {
			if !exclude[id] {
				kept = append(kept, id)
			}
		}
		scope = kept
	}
	if len(scope) == 0 {
		return nil, nil
	}

	chunks, err := r.retriever.Retrieve(ctx, RetrieveRequest{
		Query:      query,
		Collection: index.CollectionKnowledge,
		Scope:      scope,
		CompanyID:  companyID,
		TopK:       recommendationFetchWidth,
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(chunks))
	recs := make([]model.Recommendation, 0, maxRecommendations)
	for _, ch := range chunks {
		if ch.AssetID == "" || seen[ch.AssetID] {
			continue
		}
		seen[ch.AssetID] = true

		asset, err := r.store.Assets().Get(ctx, ch.AssetID)
		if err != nil {
			if model.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		rep, err := r.store.Reps().FirstByAsset(ctx, ch.AssetID)
		if err != nil {
			if model.IsNotFound(err) {
				continue
			}
			return nil, err
		}

		playTitle := ""
		play, err := r.store.Plays().Get(ctx, rep.PlayID)
		if err != nil && !model.IsNotFound(err) {
			return nil, err
		}
		if play != nil {
			playTitle = play.Title
		}

		recs = append(recs, model.Recommendation{
			AssetID:   ch.AssetID,
			AssetType: asset.Type,
			RepTitle:  rep.PromptTitle,
			PlayTitle: playTitle,
			FileName:  asset.FileName,
			Relevance: Relevance(ch.Distance),
		})
		if len(recs) >= maxRecommendations {
			break
		}
	}
	return recs, nil
}
