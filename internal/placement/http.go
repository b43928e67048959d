package placement

import (
	"errors"
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
	r.Get("/placements/jobs", h.ListJobs)
	r.Post("/placements/jobs/{id}/apply", h.Apply)
}

func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	jobType := r.URL.Query().Get("type")
	if jobType != "" && jobType != TypeJob && jobType != TypeInternship {
		httputil.RespondWithError(w, http.StatusBadRequest, "type must be job or internship")
		return
	}
	status := r.URL.Query().Get("status")
	if status != "" && status != StatusOpen && status != StatusApplied {
		httputil.RespondWithError(w, http.StatusBadRequest, "status must be open or applied")
		return
	}

	views, err := h.service.ListJobs(r.Context(), identity.ID, jobType, status)
	if err != nil {
		httputil.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, views)
}

func (h *Handler) Apply(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	jobID := chi.URLParam(r, "id")
	app, err := h.service.Apply(r.Context(), jobID, identity.ID)
	if err != nil {
		switch {
		case errors.Is(err, ErrJobNotFound):
			httputil.RespondWithError(w, http.StatusNotFound, "Job not found")
		case errors.Is(err, ErrAlreadyApplied):
			httputil.RespondWithError(w, http.StatusConflict, "You have already applied to this job")
		case errors.Is(err, ErrApplicationsClosed):
			httputil.RespondWithError(w, http.StatusConflict, "Applications are closed for this job")
		default:
			httputil.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	h.metrics.RecordJobApplication(r.Context())
	h.logger.InfoContext(r.Context(), "job application submitted", "job_id", jobID, "student_id", identity.ID)
	httputil.RespondWithJSON(w, http.StatusCreated, app)
}
