package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahidhar1516/GNI/internal/metrics"
)

func newTestRouter(t *testing.T) (*chi.Mux, *Service) {
	t.Helper()
	svc, _, _, _, _ := newTestService(t)
	handler := NewHandler(svc, testLogger(), metrics.NewMock())

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router, svc
}

func TestRegisterEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("sets the auth cookie on success", func(t *testing.T) {
		body := `{"full_name":"Jane Doe","email":"jane@gni.edu","password":"correct-horse","student_id":"GNI001"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var found bool
		for _, c := range rec.Result().Cookies() {
			if c.Name == "token" && c.Value != "" {
				found = true
				assert.True(t, c.HttpOnly)
			}
		}
		assert.True(t, found, "token cookie must be set")
	})

	t.Run("short password rejected", func(t *testing.T) {
		body := `{"full_name":"Jane Doe","email":"j2@gni.edu","password":"short","student_id":"GNI002"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		body := `{"full_name":"Jane Doe","email":"jane@gni.edu","password":"correct-horse","student_id":"GNI003"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestLoginEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)
	_, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Jane Doe", Email: "jane@gni.edu", Password: "correct-horse", StudentID: "GNI001",
	})
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		body := `{"email":"jane@gni.edu","password":"wrong-password"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid credentials", func(t *testing.T) {
		body := `{"email":"jane@gni.edu","password":"correct-horse"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.RefreshToken)
	})
}

func TestLogoutEndpoint(t *testing.T) {
	router, svc := newTestRouter(t)
	resp, err := svc.Register(context.Background(), RegisterRequest{
		FullName: "Jane Doe", Email: "jane@gni.edu", Password: "correct-horse", StudentID: "GNI001",
	})
	require.NoError(t, err)

	body := `{"refresh_token":"` + resp.RefreshToken + `"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "You have been successfully signed out.", payload["message"])

	var cleared bool
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "token cookie must be cleared")
}
