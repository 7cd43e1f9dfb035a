package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"campaign-analytics/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP
// exposing the report catalog read-only. Routes are registered on a
// chi.Router for convenient method handling.
type Handler struct {
	svc    port.ReportUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.ReportUseCase, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/reports", h.handleListReports)
		r.Post("/reports/query", h.handleQuery)
		r.Get("/reports/{name}", h.handleReport)
		r.Get("/diagnostics", h.handleDiagnostics)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// handleDiagnostics returns the data-quality summary of the loaded dataset.
func (h *Handler) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Diagnostics(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sum)
}
