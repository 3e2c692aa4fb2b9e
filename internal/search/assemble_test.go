package search

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doadrianh/bigspring-ai-take-home/internal/model"
	"github.com/doadrianh/bigspring-ai-take-home/internal/store/storetest"
)

func intPtr(v int) *int { return &v }

func TestAssembleKnowledge(t *testing.T) {
	st := storetest.NewFake()
	st.AssetByID["a1"] = &model.Asset{ID: "a1", Type: "pdf", CompanyID: "c1", FileName: "gridmaster_specs.json"}

	a := NewAssembler(st)
	chunks := []Chunk{
		{Text: "PUE is 1.08 at full load.", AssetID: "a1", ChunkType: "table", SourceFile: "gridmaster_specs.json", Page: 2, Distance: 0.1},
		{Text: "orphan chunk", AssetID: "missing", ChunkType: "text", SourceFile: "old_guide.json", Distance: 0.4},
	}

	asm, err := a.AssembleKnowledge(context.Background(), chunks)
	require.NoError(t, err)

	require.Len(t, asm.Citations, 2)
	first := asm.Citations[0]
	assert.Equal(t, 1, first.Index)
	assert.Equal(t, "gridmaster_specs", first.SourceName)
	assert.Equal(t, "pdf", first.AssetType)
	assert.InDelta(t, 0.9, first.Relevance, 1e-9)
	assert.Equal(t, 2, first.Page)

	// Context block N carries the same label as citation N.
	parts := strings.Split(asm.Context, "\n\n---\n\n")
	require.Len(t, parts, 2)
	assert.True(t, strings.HasPrefix(parts[0], "[Source 1: gridmaster_specs, Page 2]\n"), "got %q", parts[0])
	assert.Contains(t, parts[0], "PUE is 1.08")

	// Missing asset degrades to file-level metadata.
	second := asm.Citations[1]
	assert.Equal(t, "old_guide.json", second.SourceName)
	assert.Equal(t, "unknown", second.AssetType)
	assert.True(t, strings.HasPrefix(parts[1], "[Source 2: old_guide.json]\n"), "got %q", parts[1])
}

func TestAssembleKnowledgeVideoLabel(t *testing.T) {
	st := storetest.NewFake()
	st.AssetByID["v1"] = &model.Asset{ID: "v1", Type: "video", CompanyID: "c1", FileName: "demo_walkthrough.json"}

	a := NewAssembler(st)
	asm, err := a.AssembleKnowledge(context.Background(), []Chunk{
		{Text: "the cooling segment", AssetID: "v1", ChunkType: "transcript", SourceFile: "demo_walkthrough.json", Start: "00:45", End: "01:10", Speaker: "Host", Distance: 0.25},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(asm.Context, "[Source 1: demo_walkthrough, 00:45-01:10]\n"), "got %q", asm.Context)
	assert.Equal(t, "Host", asm.Citations[0].Speaker)
	assert.Equal(t, "00:45", asm.Citations[0].Start)
}

func TestAssembleHistory(t *testing.T) {
	st := storetest.NewFake()
	st.SubmissionDetails["u1"] = []*model.SubmissionDetail{
		{SubmissionID: "s1", AssetID: "sa1", RepTitle: "Pitch the cooling story", FeedbackScore: intPtr(8), FeedbackText: "Strong open, quantify savings earlier."},
	}

	a := NewAssembler(st)
	chunks := []Chunk{
		{Text: "I talked about energy costs", AssetID: "sa1", ChunkType: "transcript", SourceFile: "sub_s1.json", SubmissionID: "s1", Start: "00:23", End: "00:35", Distance: 0.3},
		{Text: "unmatched submission chunk", AssetID: "sa2", ChunkType: "transcript", SourceFile: "sub_s2.json", SubmissionID: "s2", Distance: 0.5},
	}

	asm, err := a.AssembleHistory(context.Background(), "u1", chunks)
	require.NoError(t, err)
	require.Len(t, asm.Citations, 2)

	first := asm.Citations[0]
	assert.Equal(t, "Your submission: Pitch the cooling story", first.SourceName)
	assert.Equal(t, "submission", first.AssetType)
	assert.Equal(t, "s1", first.SubmissionID)
	require.NotNil(t, first.FeedbackScore)
	assert.Equal(t, 8, *first.FeedbackScore)
	assert.InDelta(t, 0.7, first.Relevance, 1e-9)

	parts := strings.Split(asm.Context, "\n\n---\n\n")
	require.Len(t, parts, 2)
	assert.True(t, strings.HasPrefix(parts[0], "[Submission 1: Pitch the cooling story, 00:23-00:35]\n"), "got %q", parts[0])
	assert.Contains(t, parts[0], "\nFeedback (Score 8/10): Strong open, quantify savings earlier.")

	// No matching detail falls back to the generic title and omits feedback.
	second := asm.Citations[1]
	assert.Equal(t, "Your submission: Practice", second.SourceName)
	assert.Nil(t, second.FeedbackScore)
	assert.True(t, strings.HasPrefix(parts[1], "[Submission 2: Practice]\n"), "got %q", parts[1])
	assert.NotContains(t, parts[1], "Feedback (Score")
}
