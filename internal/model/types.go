package model

// Company is a tenant whose training content and users live side by side
// with every other tenant's. company_id is the hard isolation boundary for
// knowledge retrieval.
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// User is a sales representative belonging to exactly one company.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	CompanyID   string `json:"company_id"`
	Role        string `json:"role"`
	Segment     string `json:"segment"`
	IsActive    bool   `json:"is_active"`
}

// Play is a curated bundle of training activities assigned to users.
type Play struct {
	ID        string `json:"id"`
	CompanyID string `json:"company_id"`
	Title     string `json:"title"`
}

// PlayAssignment links a user to a play. Status is carried through but not
// filtered on when resolving knowledge scope.
type PlayAssignment struct {
	UserID       string  `json:"user_id"`
	PlayID       string  `json:"play_id"`
	Status       string  `json:"status"`
	AssignedDate string  `json:"assigned_date"`
	CompletedAt  *string `json:"completed_at,omitempty"`
}

// AssignedPlay is the joined assignment+play view returned by the user
// detail endpoint.
type AssignedPlay struct {
	PlayID       string `json:"play_id"`
	Title        string `json:"title"`
	Status       string `json:"status"`
	AssignedDate string `json:"assigned_date"`
}

// UserDetail is the user profile plus assigned plays.
type UserDetail struct {
	ID            string         `json:"id"`
	Username      string         `json:"username"`
	DisplayName   string         `json:"display_name"`
	CompanyID     string         `json:"company_id"`
	Role          string         `json:"role"`
	Segment       string         `json:"segment"`
	AssignedPlays []AssignedPlay `json:"assigned_plays"`
}

// Rep prompt types.
const (
	RepTypeWatch    = "watch"
	RepTypePractice = "practice"
)

// Rep is a unit within a play: watch reps reference an asset, practice reps
// are fulfilled by submissions.
type Rep struct {
	ID          string  `json:"id"`
	PlayID      string  `json:"play_id"`
	CompanyID   string  `json:"company_id"`
	PromptType  string  `json:"prompt_type"`
	PromptTitle string  `json:"prompt_title"`
	AssetID     *string `json:"asset_id,omitempty"`
}

// Asset is stored content (pdf, video, image, text, audio) and the unit of
// retrieval provenance.
type Asset struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	CompanyID string `json:"company_id"`
	FileName  string `json:"file_name"`
}

// Submission is a user's practice attempt, materialized as an asset.
type Submission struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	RepID     string `json:"rep_id"`
	AssetID   string `json:"asset_id"`
	CompanyID string `json:"company_id"`
}

// SubmissionDetail is a submission joined with its rep title and feedback,
// prefetched once per history search and keyed by asset id.
type SubmissionDetail struct {
	SubmissionID  string
	AssetID       string
	RepTitle      string
	FeedbackScore *int
	FeedbackText  string
}

// Citation is the user-facing provenance record for a chunk used in an
// answer. Index is 1-based and matches the [Source N]/[Submission N] labels
// in the context handed to the answer model.
type Citation struct {
	Index      int     `json:"index"`
	AssetID    string  `json:"asset_id"`
	SourceFile string  `json:"source_file"`
	SourceName string  `json:"source_name"`
	AssetType  string  `json:"asset_type"`
	ChunkType  string  `json:"chunk_type"`
	Relevance  float64 `json:"relevance"`

	// Knowledge-scope provenance, present when the chunk carries it.
	Page       int    `json:"page,omitempty"`
	Start      string `json:"start,omitempty"`
	End        string `json:"end,omitempty"`
	Speaker    string `json:"speaker,omitempty"`
	TableTitle string `json:"table_title,omitempty"`

	// History-scope fields.
	SubmissionID  string `json:"submission_id,omitempty"`
	FeedbackScore *int   `json:"feedback_score,omitempty"`
	FeedbackText  string `json:"feedback_text,omitempty"`
}

// Recommendation is a related-content suggestion derived from a secondary
// knowledge retrieval.
type Recommendation struct {
	AssetID   string  `json:"asset_id"`
	AssetType string  `json:"asset_type"`
	RepTitle  string  `json:"rep_title"`
	PlayTitle string  `json:"play_title"`
	FileName  string  `json:"file_name"`
	Relevance float64 `json:"relevance"`
}

// Feedback is a scored critique attached to a submission; at most one per
// submission in this design.
type Feedback struct {
	SubmissionID string `json:"submission_id"`
	Score        int    `json:"score"`
	Text         string `json:"text"`
}
