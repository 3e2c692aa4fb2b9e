// Package storetest provides an in-memory store.Store for tests.
package storetest

import (
	"context"

	"github.com/doadrianh/bigspring-ai-take-home/internal/model"
	"github.com/doadrianh/bigspring-ai-take-home/internal/store"
)

// Fake implements store.Store over plain maps. Zero value is usable; every
// lookup misses until fixtures are added.
type Fake struct {
	CompanyList        []*model.Company
	UserByID           map[string]*model.User
	PlayByID           map[string]*model.Play
	AssignedByUser     map[string][]*model.AssignedPlay
	PlayIDsByUser      map[string][]string
	WatchAssetsByPlay  map[string][]string
	RepByAsset         map[string]*model.Rep
	AssetByID          map[string]*model.Asset
	SubmissionAssets   map[string][]string
	SubmissionDetails  map[string][]*model.SubmissionDetail

	// Err, when set, is returned by every operation.
	Err error
}

// NewFake returns an empty fake store.
func NewFake() *Fake {
	return &Fake{
		UserByID:          map[string]*model.User{},
		PlayByID:          map[string]*model.Play{},
		AssignedByUser:    map[string][]*model.AssignedPlay{},
		PlayIDsByUser:     map[string][]string{},
		WatchAssetsByPlay: map[string][]string{},
		RepByAsset:        map[string]*model.Rep{},
		AssetByID:         map[string]*model.Asset{},
		SubmissionAssets:  map[string][]string{},
		SubmissionDetails: map[string][]*model.SubmissionDetail{},
	}
}

func (f *Fake) Companies() store.Companies     { return fakeCompanies{f} }
func (f *Fake) Users() store.Users             { return fakeUsers{f} }
func (f *Fake) Plays() store.Plays             { return fakePlays{f} }
func (f *Fake) Reps() store.Reps               { return fakeReps{f} }
func (f *Fake) Assets() store.Assets           { return fakeAssets{f} }
func (f *Fake) Submissions() store.Submissions { return fakeSubmissions{f} }

type fakeCompanies struct{ f *Fake }

func (c fakeCompanies) List(ctx context.Context) ([]*model.Company, error) {
	if c.f.Err != nil {
		return nil, c.f.Err
	}
	return c.f.CompanyList, nil
}

type fakeUsers struct{ f *Fake }

func (u fakeUsers) Get(ctx context.Context, userID string) (*model.User, error) {
	if u.f.Err != nil {
		return nil, u.f.Err
	}
	usr, ok := u.f.UserByID[userID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return usr, nil
}

func (u fakeUsers) ListByCompany(ctx context.Context, companyID string) ([]*model.User, error) {
	if u.f.Err != nil {
		return nil, u.f.Err
	}
	var res []*model.User
	for _, usr := range u.f.UserByID {
		if usr.CompanyID == companyID {
			res = append(res, usr)
		}
	}
	return res, nil
}

type fakePlays struct{ f *Fake }

func (p fakePlays) Get(ctx context.Context, playID string) (*model.Play, error) {
	if p.f.Err != nil {
		return nil, p.f.Err
	}
	pl, ok := p.f.PlayByID[playID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return pl, nil
}

func (p fakePlays) AssignedPlayIDs(ctx context.Context, userID string) ([]string, error) {
	if p.f.Err != nil {
		return nil, p.f.Err
	}
	return p.f.PlayIDsByUser[userID], nil
}

func (p fakePlays) ListAssigned(ctx context.Context, userID string) ([]*model.AssignedPlay, error) {
	if p.f.Err != nil {
		return nil, p.f.Err
	}
	return p.f.AssignedByUser[userID], nil
}

type fakeReps struct{ f *Fake }

func (r fakeReps) WatchAssetIDs(ctx context.Context, playIDs []string) ([]string, error) {
	if r.f.Err != nil {
		return nil, r.f.Err
	}
	seen := map[string]bool{}
	var ids []string
	for _, pid := range playIDs {
		for _, aid := range r.f.WatchAssetsByPlay[pid] {
			if !seen[aid] {
				seen[aid] = true
				ids = append(ids, aid)
			}
		}
	}
	return ids, nil
}

func (r fakeReps) FirstByAsset(ctx context.Context, assetID string) (*model.Rep, error) {
	if r.f.Err != nil {
		return nil, r.f.Err
	}
	rep, ok := r.f.RepByAsset[assetID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return rep, nil
}

type fakeAssets struct{ f *Fake }

func (a fakeAssets) Get(ctx context.Context, assetID string) (*model.Asset, error) {
	if a.f.Err != nil {
		return nil, a.f.Err
	}
	as, ok := a.f.AssetByID[assetID]
	if !ok {
		return nil, model.ErrNotFound
	}
	return as, nil
}

type fakeSubmissions struct{ f *Fake }

func (s fakeSubmissions) AssetIDs(ctx context.Context, userID string) ([]string, error) {
	if s.f.Err != nil {
		return nil, s.f.Err
	}
	return s.f.SubmissionAssets[userID], nil
}

func (s fakeSubmissions) ListDetails(ctx context.Context, userID string) ([]*model.SubmissionDetail, error) {
	if s.f.Err != nil {
		return nil, s.f.Err
	}
	return s.f.SubmissionDetails[userID], nil
}
