package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/odonlab/cms/internal/cms/service"
	"github.com/odonlab/cms/internal/cms/store"
	"github.com/odonlab/cms/pkg/httpx"
	"github.com/odonlab/cms/pkg/slogx"
)

// Uploads live inline in the database, so the accepted size is capped well
// below anything that would bloat row reads.
const maxUploadBytes = 10 << 20 // 10 MiB

type MediaHandler struct {
	MediaService *service.MediaService
}

// HandleUpload godoc
//
//	@Summary		Upload a media file
//	@Description	Accepts a multipart form with a single "file" field
//	@Tags			Media
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"File to upload (max 10 MiB)"
//	@Success		201		{object}	domain.MediaFile
//	@Failure		400		{object}	ErrorResponse	"Missing file field or oversized upload"
//	@Failure		401		{object}	ErrorResponse
//	@Failure		403		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/media/upload [post].
func (h *MediaHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, "Multipart form with a 'file' field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeBadRequest(w, "Failed to read uploaded file")
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	uploaded, err := h.MediaService.Upload(ctx, header.Filename, mimeType, data)
	if err != nil {
		log.Error("upload media failed", "original_filename", header.Filename, "err", err)
		writeServerError(w, "Failed to store uploaded file")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, uploaded)
}

// HandleList godoc
//
//	@Summary	List uploaded media
//	@Tags		Media
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{array}		domain.MediaFile
//	@Failure	401	{object}	ErrorResponse
//	@Failure	403	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/api/media [get].
func (h *MediaHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	files, err := h.MediaService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("list media failed", "err", err)
		writeServerError(w, "Failed to list media")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, files)
}

// HandleGet godoc
//
//	@Summary		Download a media file
//	@Description	Streams the stored bytes with the original MIME type
//	@Tags			Media
//	@Produce		octet-stream
//	@Param			id	path		string	true	"Media ID"
//	@Success		200	{file}		file
//	@Failure		404	{object}	ErrorResponse	"Media not found"
//	@Failure		500	{object}	ErrorResponse
//	@Router			/api/media/{id} [get].
func (h *MediaHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	file, data, err := h.MediaService.Open(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeNotFound(w, "Media not found")
			return
		}
		slogx.FromContext(ctx).Error("open media failed", "media_id", id, "err", err)
		writeServerError(w, "Failed to load media")
		return
	}

	w.Header().Set("Content-Type", file.FileType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", file.OriginalFilename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// HandleDelete godoc
//
//	@Summary	Delete a media file
//	@Tags		Media
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Media ID"
//	@Success	200	{object}	MessageResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse	"Media not found"
//	@Failure	500	{object}	ErrorResponse
//	@Router		/api/media/{id} [delete].
func (h *MediaHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	if err := h.MediaService.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeNotFound(w, "Media not found")
			return
		}
		slogx.FromContext(ctx).Error("delete media failed", "media_id", id, "err", err)
		writeServerError(w, "Failed to delete media")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, MessageResponse{Message: "Media deleted successfully"})
}
