package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doadrianh/bigspring-ai-take-home/internal/ai/aitest"
	"github.com/doadrianh/bigspring-ai-take-home/internal/index"
	"github.com/doadrianh/bigspring-ai-take-home/internal/index/indextest"
)

func TestRetrieveEmptyScopeSkipsRemotes(t *testing.T) {
	embedder := &aitest.Embedder{}
	idx := indextest.NewFake()
	r := NewRetriever(embedder, idx)

	chunks, err := r.Retrieve(context.Background(), RetrieveRequest{
		Query:      "anything",
		Collection: index.CollectionKnowledge,
		Scope:      nil,
		TopK:       8,
	})

	require.NoError(t, err)
	assert.Empty(t, chunks)
	assert.Zero(t, embedder.Calls)
	assert.Empty(t, idx.Queries)
}

func TestRetrieveMapsHits(t *testing.T) {
	idx := indextest.NewFake()
	idx.HitsByCollection[index.CollectionKnowledge] = []index.Hit{
		{
			Text:     "PUE table",
			Distance: 0.2,
			Meta: index.ChunkMeta{
				AssetID:    "a1",
				CompanyID:  "c1",
				ChunkType:  "table",
				SourceFile: "gridmaster.json",
				Page:       4,
				TableTitle: "Efficiency",
			},
		},
	}
	r := NewRetriever(&aitest.Embedder{}, idx)

	chunks, err := r.Retrieve(context.Background(), RetrieveRequest{
		Query:      "PUE efficiency",
		Collection: index.CollectionKnowledge,
		Scope:      []string{"a1"},
		CompanyID:  "c1",
		TopK:       8,
	})

	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "PUE table", chunks[0].Text)
	assert.Equal(t, "a1", chunks[0].AssetID)
	assert.Equal(t, 4, chunks[0].Page)
	assert.Equal(t, "Efficiency", chunks[0].TableTitle)
	assert.InDelta(t, 0.2, chunks[0].Distance, 1e-9)

	require.Len(t, idx.Queries, 1)
	assert.Equal(t, []string{"a1"}, idx.Queries[0].AssetIDs)
	assert.Equal(t, "c1", idx.Queries[0].CompanyID)
	assert.Equal(t, 8, idx.Queries[0].TopK)
}

func TestRelevance(t *testing.T) {
	cases := []struct {
		distance float64
		want     float64
	}{
		{0, 1},
		{0.1234, 0.877},
		{0.5, 0.5},
		{1, 0},
		{1.75, -0.75},
		{2, -1},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, Relevance(tc.distance), 1e-9, "distance %v", tc.distance)
	}
}
