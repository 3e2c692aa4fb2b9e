package api

import (
	"github.com/gorilla/mux"

	"github.com/doadrianh/bigspring-ai-take-home/internal/api/recovery"
	"github.com/doadrianh/bigspring-ai-take-home/internal/index"
	"github.com/doadrianh/bigspring-ai-take-home/internal/search"
	"github.com/doadrianh/bigspring-ai-take-home/internal/store"
)

// NewRouter wires all HTTP routes.
func NewRouter(st store.Store, idx index.Index, orch *search.Orchestrator) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware)

	healthHandler := NewHealthHandler(st, idx)
	directoryHandler := NewDirectoryHandler(st)
	searchHandler := NewSearchHandler(st, orch)

	router.HandleFunc("/api/health", healthHandler.CheckHealth).Methods("GET")

	router.HandleFunc("/api/companies", directoryHandler.ListCompanies).Methods("GET")
	router.HandleFunc("/api/companies/{companyId}/users", directoryHandler.ListUsers).Methods("GET")
	router.HandleFunc("/api/users/{userId}", directoryHandler.GetUser).Methods("GET")

	router.HandleFunc("/api/search", searchHandler.HandleSearch).Methods("POST")

	return router
}
