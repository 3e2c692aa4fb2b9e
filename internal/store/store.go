package store

import (
	"context"

	"github.com/doadrianh/bigspring-ai-take-home/internal/model"
)

// Store exposes the read-only relational operations required at query time.
// Population of the underlying schema happens in a separate offline
// ingestion process; nothing here mutates data.
type Store interface {
	Companies() Companies
	Users() Users
	Plays() Plays
	Reps() Reps
	Assets() Assets
	Submissions() Submissions
}

type Companies interface {
	List(ctx context.Context) ([]*model.Company, error)
}

type Users interface {
	// Get returns model.ErrNotFound when the user does not exist.
	Get(ctx context.Context, userID string) (*model.User, error)
	ListByCompany(ctx context.Context, companyID string) ([]*model.User, error)
}

type Plays interface {
	Get(ctx context.Context, playID string) (*model.Play, error)
	// AssignedPlayIDs returns the play ids assigned to the user, regardless
	// of assignment status.
	AssignedPlayIDs(ctx context.Context, userID string) ([]string, error)
	// ListAssigned joins assignments with play titles for the user detail view.
	ListAssigned(ctx context.Context, userID string) ([]*model.AssignedPlay, error)
}

type Reps interface {
	// WatchAssetIDs returns distinct asset ids referenced by watch-type reps
	// in the given plays, excluding reps with no linked asset.
	WatchAssetIDs(ctx context.Context, playIDs []string) ([]string, error)
	// FirstByAsset returns any rep referencing the asset, or ErrNotFound.
	FirstByAsset(ctx context.Context, assetID string) (*model.Rep, error)
}

type Assets interface {
	Get(ctx context.Context, assetID string) (*model.Asset, error)
}

type Submissions interface {
	// AssetIDs returns the asset ids of submissions authored by the user.
	AssetIDs(ctx context.Context, userID string) ([]string, error)
	// ListDetails returns the user's submissions joined with rep titles and
	// feedback, for one-shot prefetch keyed by asset id.
	ListDetails(ctx context.Context, userID string) ([]*model.SubmissionDetail, error)
}

// HealthPinger is optionally implemented by a Store to expose a connectivity
// probe. Returns nil when healthy.
type HealthPinger interface {
	HealthPing(ctx context.Context) error
}
