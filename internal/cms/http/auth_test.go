package http

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegister_Conflict(t *testing.T) {
	router := newTestRouter(t)

	body := RegisterRequest{Username: "carol", Email: "carol@example.com", Password: "secretpw"}
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusConflict, rec.Code)

	resp := decodeJSON[ErrorResponse](t, rec)
	require.Equal(t, "conflict", resp.Error)
}

func TestRegister_MissingFields(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Username: "dave",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegister_MalformedBody(t *testing.T) {
	router := newTestRouter(t)

	req, rec := newRawRequest(t, http.MethodPost, "/api/auth/register", "{not json")
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_WrongPassword(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
}

func TestLogin_UnknownUser(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegister_ResponseOmitsPasswordHash(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", "", RegisterRequest{
		Username: "erin",
		Email:    "erin@example.com",
		Password: "secretpw",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.False(t, strings.Contains(rec.Body.String(), "password"))
	require.False(t, strings.Contains(rec.Body.String(), "argon2"))
}
