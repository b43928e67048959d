package schedule

import (
	"errors"
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
	r.Get("/schedule", h.ForDate)
	r.Post("/schedule/events", h.CreateEvent)
}

func (h *Handler) ForDate(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		httputil.RespondWithError(w, http.StatusBadRequest, "date query parameter is required")
		return
	}

	view, err := h.service.ForDate(r.Context(), identity.ID, date)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidDate):
			httputil.RespondWithError(w, http.StatusBadRequest, "date must be in YYYY-MM-DD format")
		case errors.Is(err, ErrResultDiscard):
			// A newer lookup replaced this one; nothing to render.
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, ErrFetchFailed):
			httputil.RespondWithError(w, http.StatusBadGateway, "Failed to load schedule. Please try again.")
		default:
			httputil.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.metrics.RecordScheduleViewed(r.Context())
	httputil.RespondWithJSON(w, http.StatusOK, view)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateEventRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := h.service.CreateEvent(r.Context(), identity.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidTimes):
			httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			httputil.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.logger.InfoContext(r.Context(), "schedule event created", "student_id", identity.ID, "entry_id", entry.ID)
	httputil.RespondWithJSON(w, http.StatusCreated, entry)
}
