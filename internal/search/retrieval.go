package search

import (
	"context"
	"math"

	"github.com/pkg/errors"

	"github.com/doadrianh/bigspring-ai-take-home/internal/ai"
	"github.com/doadrianh/bigspring-ai-take-home/internal/index"
)

// Chunk is one retrieved passage with its vector distance and the metadata
// needed for citation building.
type Chunk struct {
	Text         string
	AssetID      string
	ChunkType    string
	SourceFile   string
	SubmissionID string
	Page         int
	Start        string
	End          string
	Speaker      string
	TableTitle   string
	Distance     float64
}

// RetrieveRequest describes one scoped similarity search.
type RetrieveRequest struct {
	Query      string
	Collection string
	Scope      []string
	CompanyID  string
	UserID     string
	TopK       int
}

// Retriever embeds a query and runs it against the vector index under a
// mandatory scope filter.
type Retriever struct {
	embedder ai.Embedder
	index    index.Index
}

func NewRetriever(embedder ai.Embedder, idx index.Index) *Retriever {
	return &Retriever{embedder: embedder, index: idx}
}

// Retrieve returns the nearest chunks within the request scope. An empty
// scope returns no chunks without touching the embedder or the index.
func (r *Retriever) Retrieve(ctx context.Context, req RetrieveRequest) ([]Chunk, error) {
	if len(req.Scope) == 0 {
		return nil, nil
	}

	vec, err := r.embedder.Embed(ctx, req.Query)
	if err != nil {
		return nil, errors.Wrap(err, "embed query")
	}

	hits, err := r.index.Query(ctx, index.Query{
		Collection: req.Collection,
		Vector:     vec,
		AssetIDs:   req.Scope,
		CompanyID:  req.CompanyID,
		UserID:     req.UserID,
		TopK:       req.TopK,
	})
	if err != nil {
		return nil, errors.Wrap(err, "query index")
	}

	chunks := make([]Chunk, 0, len(hits))
	for _, h := range hits {
		chunks = append(chunks, Chunk{
			Text:         h.Text,
			AssetID:      h.Meta.AssetID,
			ChunkType:    h.Meta.ChunkType,
			SourceFile:   h.Meta.SourceFile,
			SubmissionID: h.Meta.SubmissionID,
			Page:         h.Meta.Page,
			Start:        h.Meta.Start,
			End:          h.Meta.End,
			Speaker:      h.Meta.Speaker,
			TableTitle:   h.Meta.TableTitle,
			Distance:     h.Distance,
		})
	}
	return chunks, nil
}

// Relevance converts a vector distance to the user-facing relevance score,
// rounded to three decimals. All relevance numbers in the API come from
// here.
func Relevance(distance float64) float64 {
	return math.Round((1-distance)*1000) / 1000
}
