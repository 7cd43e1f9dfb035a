package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"campaign-analytics/internal/core/engine"
	"campaign-analytics/internal/core/port"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps usecase errors onto status codes. Unknown reports are
// 404, invalid specs 400. Anything else is logged and reported as 500
// without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var se *engine.SpecError
	switch {
	case errors.Is(err, port.ErrUnknownReport):
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &se):
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: se.Error()})
	case errors.Is(err, port.ErrDatasetEmpty):
		h.writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("request failed",
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err),
		)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
