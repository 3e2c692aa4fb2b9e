package index

import "context"

// Logical collection names exposed by the vector index.
const (
	CollectionKnowledge   = "knowledge"
	CollectionSubmissions = "submissions"
)

// ChunkMeta is the provenance metadata stored alongside each indexed chunk.
type ChunkMeta struct {
	AssetID      string
	CompanyID    string
	UserID       string
	SubmissionID string
	ChunkType    string
	SourceFile   string
	Page         int
	Start        string
	End          string
	Speaker      string
	TableTitle   string
}

// Hit is one ranked similarity-search result. Distance is the vector
// distance in [0, 2]; smaller means more similar.
type Hit struct {
	Text     string
	Meta     ChunkMeta
	Distance float64
}

// Query is a similarity search over one named collection constrained by a
// conjunctive filter: asset-id membership AND the non-empty equality fields.
type Query struct {
	Collection string
	Vector     []float32
	AssetIDs   []string
	CompanyID  string
	UserID     string
	TopK       int
}

// Index provides read-only vector search. Population happens out of band in
// the offline ingestion process.
type Index interface {
	Query(ctx context.Context, q Query) ([]Hit, error)
}

// HealthPinger is optionally implemented by an Index to expose a
// connectivity probe. Returns nil when healthy.
type HealthPinger interface {
	HealthPing(ctx context.Context) error
}
