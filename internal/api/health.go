package api

import (
	"net/http"
	"time"

	"github.com/doadrianh/bigspring-ai-take-home/internal/api/respond"
	"github.com/doadrianh/bigspring-ai-take-home/internal/index"
	"github.com/doadrianh/bigspring-ai-take-home/internal/store"
)

// HealthHandler reports service and dependency health. The endpoint always
// answers 200; the body carries per-dependency status.
type HealthHandler struct {
	store store.Store
	index index.Index
}

func NewHealthHandler(st store.Store, idx index.Index) *HealthHandler {
	return &HealthHandler{store: st, index: idx}
}

// CheckHealth handles GET /api/health.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	deps := map[string]string{}
	healthy := true

	if p, ok := h.store.(store.HealthPinger); ok {
		deps["postgres"] = pingStatus(p.HealthPing(r.Context()))
		healthy = healthy && deps["postgres"] == "ok"
	}
	if p, ok := h.index.(index.HealthPinger); ok {
		deps["weaviate"] = pingStatus(p.HealthPing(r.Context()))
		healthy = healthy && deps["weaviate"] == "ok"
	}

	status := "healthy"
	if !healthy {
		status = "unhealthy"
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":       status,
		"dependencies": deps,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

func pingStatus(err error) string {
	if err != nil {
		return err.Error()
	}
	return "ok"
}
