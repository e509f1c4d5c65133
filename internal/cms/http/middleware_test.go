package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGuard_MissingToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
}

func TestGuard_GarbageToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
}

func TestGuard_TamperedToken(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", token+"x", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGuard_NonAdminForbidden(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "secretpw",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	token := loginAs(t, router, "bob", "secretpw")

	rec = doJSON(t, router, http.MethodPost, "/api/pages", token, map[string]any{
		"page_name": "new",
		"title":     "New",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)

	resp := decodeJSON[ErrorResponse](t, rec)
	require.Equal(t, "forbidden", resp.Error)
}

func TestGuard_AdminPassesThrough(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/pages", token, map[string]any{
		"page_name": "new",
		"title":     "New",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestGuard_AuthenticatedMe(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t, router)

	rec := doJSON(t, router, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	me := decodeJSON[map[string]any](t, rec)
	require.Equal(t, "admin", me["username"])
	require.Equal(t, true, me["is_admin"])
	require.NotContains(t, rec.Body.String(), "password")
}
