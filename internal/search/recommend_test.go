package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doadrianh/bigspring-ai-take-home/internal/ai/aitest"
	"github.com/doadrianh/bigspring-ai-take-home/internal/index"
	"github.com/doadrianh/bigspring-ai-take-home/internal/index/indextest"
	"github.com/doadrianh/bigspring-ai-take-home/internal/model"
	"github.com/doadrianh/bigspring-ai-take-home/internal/store/storetest"
)

func strPtr(s string) *string { return &s }

func recommenderFixture() (*storetest.Fake, *indextest.Fake, *Recommender) {
	st := storetest.NewFake()
	st.PlayIDsByUser["u1"] = []string{"p1"}
	st.PlayByID["p1"] = &model.Play{ID: "p1", CompanyID: "c1", Title: "Data Center Basics"}

	var assets []string
	for _, id := range []string{"a1", "a2", "a3", "a4", "a5"} {
		assets = append(assets, id)
		st.AssetByID[id] = &model.Asset{ID: id, Type: "pdf", CompanyID: "c1", FileName: id + ".json"}
		st.RepByAsset[id] = &model.Rep{ID: "r-" + id, PlayID: "p1", CompanyID: "c1", PromptType: model.RepTypeWatch, PromptTitle: "Watch " + id, AssetID: strPtr(id)}
	}
	st.WatchAssetsByPlay["p1"] = assets

	idx := indextest.NewFake()
	idx.HitsByCollection[index.CollectionKnowledge] = []index.Hit{
		{Distance: 0.1, Meta: index.ChunkMeta{AssetID: "a1", CompanyID: "c1"}},
		{Distance: 0.15, Meta: index.ChunkMeta{AssetID: "a1", CompanyID: "c1"}},
		{Distance: 0.2, Meta: index.ChunkMeta{AssetID: "a2", CompanyID: "c1"}},
		{Distance: 0.3, Meta: index.ChunkMeta{AssetID: "a3", CompanyID: "c1"}},
		{Distance: 0.4, Meta: index.ChunkMeta{AssetID: "a4", CompanyID: "c1"}},
	}

	scopes := NewScopeResolver(st)
	retriever := NewRetriever(&aitest.Embedder{}, idx)
	return st, idx, NewRecommender(scopes, retriever, st)
}

func TestRecommendDedupesAndCaps(t *testing.T) {
	_, idx, rec := recommenderFixture()

	recs, err := rec.Recommend(context.Background(), "cooling", "u1", "c1", nil)
	require.NoError(t, err)

	require.Len(t, recs, 3)
	assert.Equal(t, "a1", recs[0].AssetID)
	assert.Equal(t, "a2", recs[1].AssetID)
	assert.Equal(t, "a3", recs[2].AssetID)
	assert.Equal(t, "Data Center Basics", recs[0].PlayTitle)
	assert.Equal(t, "Watch a1", recs[0].RepTitle)
	assert.InDelta(t, 0.9, recs[0].Relevance, 1e-9)

	require.Len(t, idx.Queries, 1)
	assert.Equal(t, recommendationFetchWidth, idx.Queries[0].TopK)
}

func TestRecommendSkipsUnlinkedAssets(t *testing.T) {
	st, _, rec := recommenderFixture()
	delete(st.RepByAsset, "a1")
	delete(st.AssetByID, "a2")

	recs, err := rec.Recommend(context.Background(), "cooling", "u1", "c1", nil)
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, "a3", recs[0].AssetID)
	assert.Equal(t, "a4", recs[1].AssetID)
}

func TestRecommendHonorsExclusions(t *testing.T) {
	_, idx, rec := recommenderFixture()

	recs, err := rec.Recommend(context.Background(), "cooling", "u1", "c1", map[string]bool{"a1": true, "a2": true})
	require.NoError(t, err)

	require.Len(t, recs, 2)
	assert.Equal(t, "a3", recs[0].AssetID)
	assert.Equal(t, "a4", recs[1].AssetID)

	// Excluded ids never reach the index filter.
	require.Len(t, idx.Queries, 1)
	assert.NotContains(t, idx.Queries[0].AssetIDs, "a1")
	assert.NotContains(t, idx.Queries[0].AssetIDs, "a2")
}

func TestRecommendEmptyScope(t *testing.T) {
	st := storetest.NewFake()
	idx := indextest.NewFake()
	rec := NewRecommender(NewScopeResolver(st), NewRetriever(&aitest.Embedder{}, idx), st)

	recs, err := rec.Recommend(context.Background(), "cooling", "nobody", "c1", nil)
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.Empty(t, idx.Queries)
}
