package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/doadrianh/bigspring-ai-take-home/internal/api/respond"
	"github.com/doadrianh/bigspring-ai-take-home/internal/model"
	"github.com/doadrianh/bigspring-ai-take-home/internal/store"
)

// DirectoryHandler serves the persona-picker endpoints: companies, their
// users, and single-user detail.
type DirectoryHandler struct {
	store store.Store
}

func NewDirectoryHandler(st store.Store) *DirectoryHandler {
	return &DirectoryHandler{store: st}
}

func (h *DirectoryHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := h.store.Companies().List(r.Context())
	if err != nil {
		respond.WriteInternalError(w, "failed to list companies")
		return
	}
	if companies == nil {
		companies = []*model.Company{}
	}
	respond.WriteJSON(w, http.StatusOK, companies)
}

func (h *DirectoryHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	companyID := mux.Vars(r)["companyId"]
	users, err := h.store.Users().ListByCompany(r.Context(), companyID)
	if err != nil {
		respond.WriteInternalError(w, "failed to list users")
		return
	}
	if users == nil {
		users = []*model.User{}
	}
	respond.WriteJSON(w, http.StatusOK, users)
}

func (h *DirectoryHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	user, err := h.store.Users().Get(r.Context(), userID)
	if err != nil {
		if model.IsNotFound(err) {
			respond.WriteNotFound(w, "User not found")
			return
		}
		respond.WriteInternalError(w, "failed to load user")
		return
	}

	assigned, err := h.store.Plays().ListAssigned(r.Context(), userID)
	if err != nil {
		respond.WriteInternalError(w, "failed to load assigned plays")
		return
	}

	detail := model.UserDetail{
		ID:            user.ID,
		Username:      user.Username,
		DisplayName:   user.DisplayName,
		CompanyID:     user.CompanyID,
		Role:          user.Role,
		Segment:       user.Segment,
		AssignedPlays: make([]model.AssignedPlay, 0, len(assigned)),
	}
	for _, a := range assigned {
		detail.AssignedPlays = append(detail.AssignedPlays, *a)
	}
	respond.WriteJSON(w, http.StatusOK, detail)
}
