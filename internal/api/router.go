package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)
	// "/property/" and "/property" route the same
	r.Use(middleware.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeNotFound(w, "resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Operational endpoints
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)
	r.Get("/audit", s.handleListAudit)
	r.Get("/ws", s.handleWebSocket)

	// Documentation
	r.Get("/swagger.json", s.handleOpenAPI)
	r.Get("/docs", s.handleDocs)

	// Property listings
	r.Route("/property", func(r chi.Router) {
		r.Get("/", s.handleListProperties)
		r.Post("/", s.handleCreateProperty)
		r.Get("/stats", s.handlePropertyStats)
		r.Get("/{id}", s.handleGetProperty)
		r.Put("/{id}", s.handleUpdateProperty)
		r.Delete("/{id}", s.handleDeleteProperty)
	})

	// Array list
	r.Route("/list", func(r chi.Router) {
		r.Get("/", s.handleGetList)
		r.Post("/", s.handleReplaceList)
		r.Get("/minmax", s.handleListMinMax)
	})

	// Main namespace
	r.Route("/main", func(r chi.Router) {
		r.Get("/", s.handleMainGet)
		r.Post("/", s.handleMainPost)
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}
