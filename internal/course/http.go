package course

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Mahidhar1516/GNI/internal/httputil"
	"github.com/Mahidhar1516/GNI/internal/metrics"
	"github.com/Mahidhar1516/GNI/internal/session"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewHandler(service Service, logger *slog.Logger, m *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: m,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/courses", h.GetEnrolledCourses)
	router.Get("/courses/{id}", h.GetCourse)
	router.Post("/courses/{id}/enroll", h.Enroll)
}

func (h *Handler) GetEnrolledCourses(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	h.logger.InfoContext(r.Context(), "fetching enrolled courses")
	views, err := h.service.GetEnrolledCourses(r.Context(), identity.ID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, views)
}

func (h *Handler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	h.logger.InfoContext(r.Context(), "fetching course")
	course, err := h.service.GetCourse(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, course)
}

func (h *Handler) Enroll(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	courseID := chi.URLParam(r, "id")

	h.logger.InfoContext(r.Context(), "enrolling in course", "course_id", courseID)
	enrollment, err := h.service.Enroll(r.Context(), identity.ID, courseID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.metrics.RecordCourseEnrollment(r.Context())

	httputil.RespondWithJSON(w, http.StatusCreated, enrollment)
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrCourseNotFound):
		httputil.RespondWithError(w, http.StatusNotFound, "course not found")
	case errors.Is(err, ErrAlreadyEnrolled):
		httputil.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidInput):
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "course request failed", "error", err)
		httputil.RespondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}
