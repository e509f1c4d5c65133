package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/odonlab/cms/internal/cms/service"
	"github.com/odonlab/cms/internal/cms/store/drivers/sqlite"
	"github.com/odonlab/cms/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires a full router over an in-memory database, with the
// default admin and seed content in place.
func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	tokens, err := jwtx.NewHS256([]byte("test-secret"), "cms-test")
	require.NoError(t, err)

	bootstrap := &service.BootstrapService{Store: st}
	require.NoError(t, bootstrap.EnsureDefaults(t.Context()))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(tokens, "test", st, logger)
	router.AuthService = &service.AuthService{Store: st, Signer: tokens, Issuer: "cms-test"}
	router.PageService = &service.PageService{Store: st}
	router.ProjectService = &service.ProjectService{Store: st}
	router.SettingsService = &service.SettingsService{Store: st}
	router.MediaService = &service.MediaService{Store: st}
	router.ApplyRoutes()

	return router
}

func doJSON(t *testing.T, router *Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func newRawRequest(t *testing.T, method, path, body string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	return req, httptest.NewRecorder()
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

// loginAs returns a bearer token for the given credentials.
func loginAs(t *testing.T, router *Router, username, password string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", "", LoginRequest{
		Username: username,
		Password: password,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeJSON[TokenResponse](t, rec)
	require.Equal(t, "bearer", resp.TokenType)
	return resp.AccessToken
}

func adminToken(t *testing.T, router *Router) string {
	t.Helper()
	return loginAs(t, router, "admin", "admin123")
}
