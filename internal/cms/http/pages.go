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

type PagesHandler struct {
	PageService *service.PageService
}

// HandleList godoc
//
//	@Summary	List all pages
//	@Tags		Pages
//	@Produce	json
//	@Success	200	{array}		domain.PageContent
//	@Failure	500	{object}	ErrorResponse
//	@Router		/api/pages [get].
func (h *PagesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pages, err := h.PageService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("list pages failed", "err", err)
		writeServerError(w, "Failed to list pages")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, pages)
}

// HandleGet godoc
//
//	@Summary	Get a page by name
//	@Tags		Pages
//	@Produce	json
//	@Param		name	path		string	true	"Page name, e.g. home"
//	@Success	200		{object}	domain.PageContent
//	@Failure	404		{object}	ErrorResponse	"Page not found"
//	@Failure	500		{object}	ErrorResponse
//	@Router		/api/pages/{name} [get].
func (h *PagesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	page, err := h.PageService.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeNotFound(w, "Page not found")
			return
		}
		slogx.FromContext(ctx).Error("get page failed", "page_name", name, "err", err)
		writeServerError(w, "Failed to load page")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, page)
}

// HandleCreate godoc
//
//	@Summary		Create a page
//	@Tags			Pages
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		domain.PageContent	true	"Page document; id and timestamps are server-assigned"
//	@Success		201		{object}	domain.PageContent
//	@Failure		400		{object}	ErrorResponse	"Malformed body"
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/pages [post].
func (h *PagesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var page domain.PageContent
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if page.PageName == "" || page.Title == "" {
		writeBadRequest(w, "page_name and title are required")
		return
	}

	created, err := h.PageService.Create(ctx, page)
	if err != nil {
		slogx.FromContext(ctx).Error("create page failed", "page_name", page.PageName, "err", err)
		writeServerError(w, "Failed to create page")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, created)
}

// HandleUpdate godoc
//
//	@Summary		Update a page
//	@Description	Partial update: only fields present in the body are changed
//	@Tags			Pages
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			name	path		string						true	"Page name"
//	@Param			body	body		domain.PageContentUpdate	true	"Fields to change"
//	@Success		200		{object}	domain.PageContent			"Updated document"
//	@Failure		400		{object}	ErrorResponse				"Malformed body"
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse	"Page not found"
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/pages/{name} [put].
func (h *PagesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	var upd domain.PageContentUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	page, err := h.PageService.Update(ctx, name, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeNotFound(w, "Page not found")
			return
		}
		slogx.FromContext(ctx).Error("update page failed", "page_name", name, "err", err)
		writeServerError(w, "Failed to update page")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, page)
}

// HandleDelete godoc
//
//	@Summary	Delete a page
//	@Tags		Pages
//	@Security	BearerAuth
//	@Produce	json
//	@Param		name	path		string	true	"Page name"
//	@Success	200		{object}	MessageResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	403		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse	"Page not found"
//	@Failure	500		{object}	ErrorResponse
//	@Router		/api/pages/{name} [delete].
func (h *PagesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := r.PathValue("name")

	if err := h.PageService.Delete(ctx, name); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeNotFound(w, "Page not found")
			return
		}
		slogx.FromContext(ctx).Error("delete page failed", "page_name", name, "err", err)
		writeServerError(w, "Failed to delete page")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Page deleted successfully"})
}
