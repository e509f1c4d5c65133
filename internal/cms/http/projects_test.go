package http

import (
	"net/http"
	"testing"

	"github.com/odonlab/cms/internal/cms/domain"
	"github.com/stretchr/testify/require"
)

func TestProjects_PublicListIsOrdered(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	projects := decodeJSON[[]domain.Project](t, rec)
	require.Len(t, projects, len(domain.SeedProjects()))
	for i := 1; i < len(projects); i++ {
		require.LessOrEqual(t, projects[i-1].DisplayOrder, projects[i].DisplayOrder)
	}
}

func TestProjects_AdminCRUD(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t, router)

	rec := doJSON(t, router, http.MethodPost, "/api/projects", token, map[string]any{
		"title":       "Quantum Sensing",
		"description": "new project",
		"order":       99,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeJSON[domain.Project](t, rec)
	require.NotEmpty(t, created.ID)

	rec = doJSON(t, router, http.MethodPut, "/api/projects/"+created.ID, token, map[string]any{
		"order": 1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeJSON[domain.Project](t, rec)
	require.Equal(t, 1, updated.DisplayOrder)
	require.Equal(t, "Quantum Sensing", updated.Title)

	rec = doJSON(t, router, http.MethodDelete, "/api/projects/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/projects/"+created.ID, "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProjects_DeleteUnknownID(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t, router)

	rec := doJSON(t, router, http.MethodDelete, "/api/projects/01J00000000000000000000000", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
