package http

import (
	"net/http"
	"testing"

	"github.com/odonlab/cms/internal/cms/domain"
	"github.com/stretchr/testify/require"
)

func TestPages_PublicListIncludesSeeds(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/pages", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	pages := decodeJSON[[]domain.PageContent](t, rec)
	require.Len(t, pages, len(domain.SeedPages()))

	names := make([]string, 0, len(pages))
	for _, p := range pages {
		names = append(names, p.PageName)
	}
	require.Contains(t, names, "home")
}

func TestPages_GetUnknownName(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/pages/ghost", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeJSON[ErrorResponse](t, rec)
	require.Equal(t, "not_found", resp.Error)
}

func TestPages_AdminCRUD(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/pages", token, map[string]any{
		"page_name": "about",
		"title":     "About",
		"content":   map[string]any{"body": "hello"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeJSON[domain.PageContent](t, rec)
	require.NotEmpty(t, created.ID)

	rec = doJSON(t, router, http.MethodPut, "/api/pages/about", token, map[string]any{
		"title": "About Us",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeJSON[domain.PageContent](t, rec)
	require.Equal(t, "About Us", updated.Title)
	require.Equal(t, "hello", updated.Content["body"])

	rec = doJSON(t, router, http.MethodDelete, "/api/pages/about", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/pages/about", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPages_UpdateUnknownName(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t, router)

	rec := doJSON(t, router, http.MethodPut, "/api/pages/ghost", token, map[string]any{
		"title": "nope",
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPages_WriteRequiresAuth(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/pages/home", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
