package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/doadrianh/bigspring-ai-take-home/internal/api/respond"
	"github.com/doadrianh/bigspring-ai-take-home/internal/model"
	"github.com/doadrianh/bigspring-ai-take-home/internal/search"
	"github.com/doadrianh/bigspring-ai-take-home/internal/store"
)

// searchRunner is the orchestration entry point the handler depends on.
type searchRunner interface {
	Run(ctx context.Context, user *model.User, query string, emit search.EmitFunc) error
}

// SearchHandler serves POST /api/search as a server-sent event stream.
type SearchHandler struct {
	store  store.Store
	runner searchRunner
}

func NewSearchHandler(st store.Store, runner searchRunner) *SearchHandler {
	return &SearchHandler{store: st, runner: runner}
}

// SearchRequest is the POST /api/search body.
type SearchRequest struct {
	UserID string `json:"user_id"`
	Query  string `json:"query"`
}

func (req *SearchRequest) validate() error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("user_id is required")
	}
	if strings.TrimSpace(req.Query) == "" {
		return fmt.Errorf("query is required")
	}
	return nil
}

// HandleSearch resolves the user, then streams pipeline events. User
// resolution happens before any SSE bytes go out so a missing user is still
// a plain 404.
func (h *SearchHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "invalid json")
		return
	}
	if err := req.validate(); err != nil {
		respond.WriteBadRequest(w, err.Error())
		return
	}

	user, err := h.store.Users().Get(r.Context(), req.UserID)
	if err != nil {
		if model.IsNotFound(err) {
			respond.WriteNotFound(w, "User not found")
			return
		}
		respond.WriteInternalError(w, "failed to load user")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		respond.WriteInternalError(w, "streaming unsupported")
		return
	}

	requestID := uuid.NewString()
	logger := log.With().
		Str("requestId", requestID).
		Str("userId", user.ID).
		Str("companyId", user.CompanyID).
		Logger()
	logger.Info().Msg("search started")

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Request-Id", requestID)
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	emit := func(e search.Event) error {
		payload, err := json.Marshal(e.Data)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Type, payload); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	}

	if err := h.runner.Run(r.Context(), user, req.Query, emit); err != nil {
		// The consumer went away mid-stream; nothing left to send.
		logger.Warn().Err(err).Msg("search stream aborted")
		return
	}
	logger.Info().Msg("search completed")
}
