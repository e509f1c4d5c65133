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

type SettingsHandler struct {
	SettingsService *service.SettingsService
}

// HandleGet godoc
//
//	@Summary		Get site settings
//	@Description	Returns the settings singleton, creating it with defaults on first read
//	@Tags			Settings
//	@Produce		json
//	@Success		200	{object}	domain.SiteSettings
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/settings [get].
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	settings, err := h.SettingsService.Get(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("get settings failed", "err", err)
		writeServerError(w, "Failed to load settings")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, settings)
}

// HandleUpdate godoc
//
//	@Summary		Update site settings
//	@Description	Partial update: only fields present in the body are changed
//	@Tags			Settings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		domain.SiteSettingsUpdate	true	"Fields to change"
//	@Success		200		{object}	domain.SiteSettings			"Updated document"
//	@Failure		400		{object}	ErrorResponse				"Malformed body"
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse	"Settings not initialized yet"
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/settings [put].
func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var upd domain.SiteSettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	settings, err := h.SettingsService.Update(ctx, upd)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeNotFound(w, "Settings not found")
			return
		}
		slogx.FromContext(ctx).Error("update settings failed", "err", err)
		writeServerError(w, "Failed to update settings")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, settings)
}
