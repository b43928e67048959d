package assignment

import (
	"log/slog"
	"net/http"
	"strconv"

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
	router.Get("/assignments/upcoming", h.Upcoming)
}

func (h *Handler) Upcoming(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := DefaultUpcomingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			httputil.RespondWithError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	h.logger.InfoContext(r.Context(), "fetching upcoming assignments", "limit", limit)
	views, err := h.service.UpcomingAssignments(r.Context(), identity.ID, limit)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "assignment request failed", "error", err)
		httputil.RespondWithError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, views)
}
