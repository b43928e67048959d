package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Mahidhar1516/GNI/internal/httputil"
	"github.com/Mahidhar1516/GNI/internal/metrics"
	"github.com/Mahidhar1516/GNI/internal/session"
)

type Handler struct {
	service *Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewHandler(service *Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: m,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.Dashboard)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	view, applied, err := h.service.Load(r.Context(), identity.ID)
	if err != nil {
		httputil.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !applied {
		// A newer load replaced this one; nothing to render.
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.metrics.RecordDashboardViewed(r.Context())
	httputil.RespondWithJSON(w, http.StatusOK, view)
}
