// ABOUTME: HTTP handlers for the bookdesk web UI
// ABOUTME: Route registration, request parsing, and error-to-status mapping

package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bookdesk/bookdesk/internal/library"
	"github.com/bookdesk/bookdesk/internal/store"
)

// Handlers serves the server-rendered pages and form endpoints.
type Handlers struct {
	service *library.Service
	logger  *slog.Logger
}

// New creates the web handlers over the given service.
func New(service *library.Service) *Handlers {
	return &Handlers{
		service: service,
		logger:  slog.Default().With("component", "web"),
	}
}

// RegisterRoutes registers all routes on the given mux.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handleHome)
	mux.HandleFunc("GET /health", h.handleHealth)

	// Catalog
	mux.HandleFunc("GET /books", h.handleBooksList)
	mux.HandleFunc("POST /books/add", h.handleBookAdd)
	mux.HandleFunc("GET /books/delete/{id}", h.handleBookDelete)
	mux.HandleFunc("GET /books/edit/{id}", h.handleBookEdit)
	mux.HandleFunc("POST /books/update/{id}", h.handleBookUpdate)

	// Users
	mux.HandleFunc("GET /users", h.handleUsersList)
	mux.HandleFunc("POST /users/add", h.handleUserAdd)
	mux.HandleFunc("GET /users/delete/{id}", h.handleUserDelete)
	mux.HandleFunc("GET /users/edit/{id}", h.handleUserEdit)
	mux.HandleFunc("POST /users/update/{id}", h.handleUserUpdate)

	// Transactions
	mux.HandleFunc("GET /transactions", h.handleTransactionsList)
	mux.HandleFunc("POST /transactions/add_transaction", h.handleTransactionAdd)

	h.logger.Info("web routes registered")
}

// handleHome renders the landing page.
func (h *Handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	h.renderHome(w)
}

// handleHealth reports liveness.
func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// pagingParams reads page and per_page query parameters. Missing or
// malformed values come back as zero; the library layer clamps them.
func pagingParams(r *http.Request) (page, perPage int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ = strconv.Atoi(r.URL.Query().Get("per_page"))
	return page, perPage
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// writeError maps domain errors to status codes and writes a JSON error body.
// Successes redirect; failures get a real status instead of a 200 error page.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrDuplicateUsername), errors.Is(err, store.ErrAlreadyCheckedOut):
		status = http.StatusConflict
	case errors.Is(err, library.ErrValidation):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

// badRequest writes a 400 for malformed input outside the domain error taxonomy.
func (h *Handlers) badRequest(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
