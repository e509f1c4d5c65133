package http

import (
	"net/http"
	"testing"

	"github.com/odonlab/cms/internal/cms/domain"
	"github.com/stretchr/testify/require"
)

func TestSettings_PublicGetCreatesSingleton(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	first := decodeJSON[domain.SiteSettings](t, rec)
	require.NotEmpty(t, first.ID)

	rec = doJSON(t, router, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	second := decodeJSON[domain.SiteSettings](t, rec)
	require.Equal(t, first.ID, second.ID)
}

func TestSettings_AdminUpdate(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t, router)

	// First read creates the singleton.
	rec := doJSON(t, router, http.MethodGet, "/api/settings", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	created := decodeJSON[domain.SiteSettings](t, rec)

	rec = doJSON(t, router, http.MethodPut, "/api/settings", token, map[string]any{
		"site_name":    "Renamed Lab",
		"social_links": map[string]string{"github": "https://github.com/odonlab"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeJSON[domain.SiteSettings](t, rec)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Renamed Lab", updated.SiteName)
	require.Equal(t, created.ContactEmail, updated.ContactEmail)
}

func TestSettings_UpdateRequiresAdmin(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/api/settings", "", map[string]any{
		"site_name": "nope",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
