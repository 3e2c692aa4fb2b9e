package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/doadrianh/bigspring-ai-take-home/internal/model"
	"github.com/doadrianh/bigspring-ai-take-home/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// NewWithDB constructs a read-only Postgres store backed directly by database/sql.
func NewWithDB(db *sql.DB) store.Store { return &pgStore{db: db} }

type pgStore struct{ db *sql.DB }

func (s *pgStore) Companies() store.Companies     { return &companies{db: s.db} }
func (s *pgStore) Users() store.Users             { return &users{db: s.db} }
func (s *pgStore) Plays() store.Plays             { return &plays{db: s.db} }
func (s *pgStore) Reps() store.Reps               { return &reps{db: s.db} }
func (s *pgStore) Assets() store.Assets           { return &assets{db: s.db} }
func (s *pgStore) Submissions() store.Submissions { return &submissions{db: s.db} }

// HealthPing implements store.HealthPinger.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}
	return err
}

// --- Companies ---
type companies struct{ db *sql.DB }

func (c *companies) List(ctx context.Context) ([]*model.Company, error) {
	rows, err := c.db.QueryContext(ctx, `
        SELECT id, name, COALESCE(description, '') FROM companies ORDER BY name
    `)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []*model.Company
	for rows.Next() {
		var m model.Company
		if err := rows.Scan(&m.ID, &m.Name, &m.Description); err != nil {
			return nil, err
		}
		res = append(res, &m)
	}
	return res, rows.Err()
}

// --- Users ---
type users struct{ db *sql.DB }

func (u *users) Get(ctx context.Context, userID string) (*model.User, error) {
	var out model.User
	row := u.db.QueryRowContext(ctx, `
        SELECT id, username, COALESCE(display_name, ''), company_id,
               COALESCE(role, ''), COALESCE(segment, ''), is_active
        FROM users WHERE id=$1
    `, userID)
	if err := row.Scan(&out.ID, &out.Username, &out.DisplayName, &out.CompanyID,
		&out.Role, &out.Segment, &out.IsActive); err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (u *users) ListByCompany(ctx context.Context, companyID string) ([]*model.User, error) {
	rows, err := u.db.QueryContext(ctx, `
        SELECT id, username, COALESCE(display_name, ''), company_id,
               COALESCE(role, ''), COALESCE(segment, ''), is_active
        FROM users WHERE company_id=$1 ORDER BY username
    `, companyID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []*model.User
	for rows.Next() {
		var m model.User
		if err := rows.Scan(&m.ID, &m.Username, &m.DisplayName, &m.CompanyID,
			&m.Role, &m.Segment, &m.IsActive); err != nil {
			return nil, err
		}
		res = append(res, &m)
	}
	return res, rows.Err()
}

// --- Plays ---
type plays struct{ db *sql.DB }

func (p *plays) Get(ctx context.Context, playID string) (*model.Play, error) {
	var out model.Play
	row := p.db.QueryRowContext(ctx, `
        SELECT id, company_id, COALESCE(title, '') FROM plays WHERE id=$1
    `, playID)
	if err := row.Scan(&out.ID, &out.CompanyID, &out.Title); err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (p *plays) AssignedPlayIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := p.db.QueryContext(ctx, `
        SELECT play_id FROM play_assignments WHERE user_id=$1
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (p *plays) ListAssigned(ctx context.Context, userID string) ([]*model.AssignedPlay, error) {
	rows, err := p.db.QueryContext(ctx, `
        SELECT pl.id, COALESCE(pl.title, ''), COALESCE(pa.status, ''), COALESCE(pa.assigned_date, '')
        FROM play_assignments pa
        JOIN plays pl ON pl.id = pa.play_id
        WHERE pa.user_id=$1
        ORDER BY pa.assigned_date
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []*model.AssignedPlay
	for rows.Next() {
		var ap model.AssignedPlay
		if err := rows.Scan(&ap.PlayID, &ap.Title, &ap.Status, &ap.AssignedDate); err != nil {
			return nil, err
		}
		res = append(res, &ap)
	}
	return res, rows.Err()
}

// --- Reps ---
type reps struct{ db *sql.DB }

func (r *reps) WatchAssetIDs(ctx context.Context, playIDs []string) ([]string, error) {
	if len(playIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `
        SELECT DISTINCT asset_id FROM reps
        WHERE play_id = ANY($1) AND prompt_type = 'watch' AND asset_id IS NOT NULL
    `, playIDs)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *reps) FirstByAsset(ctx context.Context, assetID string) (*model.Rep, error) {
	var out model.Rep
	row := r.db.QueryRowContext(ctx, `
        SELECT id, play_id, company_id, prompt_type, COALESCE(prompt_title, ''), asset_id
        FROM reps WHERE asset_id=$1 LIMIT 1
    `, assetID)
	if err := row.Scan(&out.ID, &out.PlayID, &out.CompanyID, &out.PromptType,
		&out.PromptTitle, &out.AssetID); err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

// --- Assets ---
type assets struct{ db *sql.DB }

func (a *assets) Get(ctx context.Context, assetID string) (*model.Asset, error) {
	var out model.Asset
	row := a.db.QueryRowContext(ctx, `
        SELECT id, type, company_id, file_name FROM assets WHERE id=$1
    `, assetID)
	if err := row.Scan(&out.ID, &out.Type, &out.CompanyID, &out.FileName); err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

// --- Submissions ---
type submissions struct{ db *sql.DB }

func (s *submissions) AssetIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT asset_id FROM submissions WHERE user_id=$1
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *submissions) ListDetails(ctx context.Context, userID string) ([]*model.SubmissionDetail, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT su.id, su.asset_id, COALESCE(r.prompt_title, ''), f.score, COALESCE(f.text, '')
        FROM submissions su
        LEFT JOIN reps r ON r.id = su.rep_id
        LEFT JOIN feedback f ON f.submission_id = su.id
        WHERE su.user_id=$1
    `, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []*model.SubmissionDetail
	for rows.Next() {
		var d model.SubmissionDetail
		var score sql.NullInt64
		if err := rows.Scan(&d.SubmissionID, &d.AssetID, &d.RepTitle, &score, &d.FeedbackText); err != nil {
			return nil, err
		}
		if score.Valid {
			v := int(score.Int64)
			d.FeedbackScore = &v
		}
		res = append(res, &d)
	}
	return res, rows.Err()
}
