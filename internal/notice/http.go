package notice

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/Mahidhar1516/GNI/internal/httputil"
	"github.com/Mahidhar1516/GNI/internal/metrics"
	"github.com/Mahidhar1516/GNI/internal/session"
)

type Handler struct {
	service  *Service
	validate *validator.Validate
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewHandler(service *Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
		metrics:  m,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/notices", h.List)
	r.Post("/notices", h.Publish)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := session.FromContext(r.Context()); !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	kind := r.URL.Query().Get("kind")
	category := r.URL.Query().Get("category")

	notices, err := h.service.List(r.Context(), kind, category)
	if err != nil {
		httputil.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, notices)
}

func (h *Handler) Publish(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	notice, err := h.service.Publish(r.Context(), req)
	if err != nil {
		httputil.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.metrics.RecordNoticePublished(r.Context())
	h.logger.InfoContext(r.Context(), "notice published", "notice_id", notice.ID, "student_id", identity.ID)
	httputil.RespondWithJSON(w, http.StatusCreated, notice)
}
