package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/odonlab/cms/internal/cms/domain"
	"github.com/odonlab/cms/internal/cms/service"
	"github.com/odonlab/cms/internal/cms/store"
	"github.com/odonlab/cms/pkg/httpx"
	"github.com/odonlab/cms/pkg/slogx"
)

type ProjectsHandler struct {
	ProjectService *service.ProjectService
}

// HandleList godoc
//
//	@Summary		List all projects
//	@Description	Ordered ascending by display order
//	@Tags			Projects
//	@Produce		json
//	@Success		200	{array}		domain.Project
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/projects [get].
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	projects, err := h.ProjectService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("list projects failed", "err", err)
		writeServerError(w, "Failed to list projects")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, projects)
}

// HandleGet godoc
//
//	@Summary	Get a project
//	@Tags		Projects
//	@Produce	json
//	@Param		id	path		string	true	"Project ID"
//	@Success	200	{object}	domain.Project
//	@Failure	404	{object}	ErrorResponse	"Project not found"
//	@Failure	500	{object}	ErrorResponse
//	@Router		/api/projects/{id} [get].
func (h *ProjectsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	project, err := h.ProjectService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeNotFound(w, "Project not found")
			return
		}
		slogx.FromContext(ctx).Error("get project failed", "project_id", id, "err", err)
		writeServerError(w, "Failed to load project")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, project)
}

// HandleCreate godoc
//
//	@Summary	Create a project
//	@Tags		Projects
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		domain.Project	true	"Project; id and timestamps are server-assigned"
//	@Success	201		{object}	domain.Project
//	@Failure	400		{object}	ErrorResponse	"Malformed body"
//	@Failure	401		{object}	ErrorResponse
//	@Failure	403		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/api/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var project domain.Project
	if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if project.Title == "" {
		writeBadRequest(w, "title is required")
		return
	}

	created, err := h.ProjectService.Create(ctx, project)
	if err != nil {
		slogx.FromContext(ctx).Error("create project failed", "title", project.Title, "err", err)
		writeServerError(w, "Failed to create project")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

// HandleUpdate godoc
//
//	@Summary		Update a project
//	@Description	Partial update: only fields present in the body are changed
//	@Tags			Projects
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Project ID"
//	@Param			body	body		domain.ProjectUpdate	true	"Fields to change"
//	@Success		200		{object}	domain.Project			"Updated document"
//	@Failure		400		{object}	ErrorResponse			"Malformed body"
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse	"Project not found"
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/projects/{id} [put].
func (h *ProjectsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var upd domain.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	project, err := h.ProjectService.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeNotFound(w, "Project not found")
			return
		}
		slogx.FromContext(ctx).Error("update project failed", "project_id", id, "err", err)
		writeServerError(w, "Failed to update project")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, project)
}

// HandleDelete godoc
//
//	@Summary	Delete a project
//	@Tags		Projects
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Project ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse	"Project not found"
//	@Failure	500	{object}	ErrorResponse
//	@Router		/api/projects/{id} [delete].
func (h *ProjectsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if err := h.ProjectService.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeNotFound(w, "Project not found")
			return
		}
		slogx.FromContext(ctx).Error("delete project failed", "project_id", id, "err", err)
		writeServerError(w, "Failed to delete project")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Project deleted successfully"})
}
