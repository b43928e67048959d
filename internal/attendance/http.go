package attendance

import (
	"log/slog"
	"net/http"

	"github.com/Mahidhar1516/GNI/internal/httputil"
	"github.com/Mahidhar1516/GNI/internal/session"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/attendance", h.ListRecords)
	router.Get("/attendance/summary", h.Summary)
}

func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	courseID := r.URL.Query().Get("course_id")

	h.logger.InfoContext(r.Context(), "fetching attendance records")
	records, err := h.service.ListRecords(r.Context(), identity.ID, courseID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "attendance request failed", "error", err)
		httputil.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, records)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	h.logger.InfoContext(r.Context(), "fetching attendance summary")
	summary, err := h.service.Summarize(r.Context(), identity.ID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "attendance summary failed", "error", err)
		httputil.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, summary)
}
