package profile

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Mahidhar1516/GNI/internal/httputil"
	"github.com/Mahidhar1516/GNI/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	service  Service
	validate *validator.Validate
	logger   *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/users/{id}", h.GetProfile)
	router.Put("/users/{id}", h.UpdateProfile)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resolveID(w, r)
	if !ok {
		return
	}

	h.logger.InfoContext(r.Context(), "fetching profile")
	view, err := h.service.GetProfile(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, view)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := h.resolveID(w, r)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.InfoContext(r.Context(), "updating profile")
	view, err := h.service.UpdateProfile(r.Context(), id, req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.RespondWithJSON(w, http.StatusOK, view)
}

// resolveID maps the "me" alias to the authenticated student and restricts
// access to the caller's own row. No session is 401; a valid session asking
// for someone else's row is 403.
func (h *Handler) resolveID(w http.ResponseWriter, r *http.Request) (string, bool) {
	identity, ok := session.FromContext(r.Context())
	if !ok {
		httputil.RespondWithError(w, http.StatusUnauthorized, "unauthorized")
		return "", false
	}
	id := chi.URLParam(r, "id")
	if id == "me" || id == identity.ID {
		return identity.ID, true
	}
	httputil.RespondWithError(w, http.StatusForbidden, "forbidden")
	return "", false
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrProfileNotFound) {
		h.logger.InfoContext(r.Context(), "profile not found")
		httputil.RespondWithError(w, http.StatusNotFound, "profile not found")
		return
	}
	if errors.Is(err, ErrInvalidInput) {
		httputil.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.ErrorContext(r.Context(), "profile request failed", "error", err)
	httputil.RespondWithError(w, http.StatusInternalServerError, "internal server error")
}
