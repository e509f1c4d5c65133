package http

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/odonlab/cms/internal/cms/domain"
	"github.com/stretchr/testify/require"
)

func uploadFile(t *testing.T, router *Router, token, filename, mimeType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(map[string][]string)
	header["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	header["Content-Type"] = []string{mimeType}
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestMedia_UploadDownloadRoundTrip(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t, router)

	payload := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	rec := uploadFile(t, router, token, "logo.png", "image/png", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	uploaded := decodeJSON[domain.MediaFile](t, rec)
	require.Equal(t, "logo.png", uploaded.OriginalFilename)
	require.Equal(t, int64(len(payload)), uploaded.FileSize)

	// Download is public.
	getRec := doJSON(t, router, http.MethodGet, "/api/media/"+uploaded.ID, "", nil)
	require.Equal(t, http.StatusOK, getRec.Code)
	require.Equal(t, "image/png", getRec.Header().Get("Content-Type"))
	require.Equal(t, payload, getRec.Body.Bytes())
}

func TestMedia_UploadRequiresAdmin(t *testing.T) {
	router := newTestRouter(t)

	rec := uploadFile(t, router, "", "logo.png", "image/png", []byte{1})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMedia_UploadMissingFileField(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t, router)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("other", "value"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMedia_AdminListAndDelete(t *testing.T) {
	router := newTestRouter(t)
	token := adminToken(t, router)

	rec := uploadFile(t, router, token, "doc.txt", "text/plain", []byte("hello"))
	require.Equal(t, http.StatusCreated, rec.Code)
	uploaded := decodeJSON[domain.MediaFile](t, rec)

	listRec := doJSON(t, router, http.MethodGet, "/api/media", token, nil)
	require.Equal(t, http.StatusOK, listRec.Code)
	files := decodeJSON[[]domain.MediaFile](t, listRec)
	require.Len(t, files, 1)

	delRec := doJSON(t, router, http.MethodDelete, "/api/media/"+uploaded.ID, token, nil)
	require.Equal(t, http.StatusOK, delRec.Code)

	getRec := doJSON(t, router, http.MethodGet, "/api/media/"+uploaded.ID, "", nil)
	require.Equal(t, http.StatusNotFound, getRec.Code)
}
