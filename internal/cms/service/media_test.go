package service

import (
	"context"
	"strings"
	"testing"

	"github.com/odonlab/cms/internal/cms/store"
	"github.com/stretchr/testify/require"
)

func TestMediaService_UploadOpenRoundTrip(t *testing.T) {
	svc := &MediaService{Store: newTestStore(t)}
	ctx := context.Background()

	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 1, 2, 3}
	uploaded, err := svc.Upload(ctx, "logo.png", "image/png", payload)
	require.NoError(t, err)
	require.NotEmpty(t, uploaded.ID)
	require.Equal(t, "logo.png", uploaded.OriginalFilename)
	require.True(t, strings.HasSuffix(uploaded.Filename, "_logo.png"))
	require.Equal(t, int64(len(payload)), uploaded.FileSize)

	file, data, err := svc.Open(ctx, uploaded.ID)
	require.NoError(t, err)
	require.Equal(t, "image/png", file.FileType)
	require.Equal(t, payload, data)
}

func TestMediaService_ListReturnsUploads(t *testing.T) {
	svc := &MediaService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := svc.Upload(ctx, "a.txt", "text/plain", []byte("aaa"))
	require.NoError(t, err)
	_, err = svc.Upload(ctx, "b.txt", "text/plain", []byte("bbb"))
	require.NoError(t, err)

	files, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)
}

func TestMediaService_DeleteThenOpen(t *testing.T) {
	svc := &MediaService{Store: newTestStore(t)}
	ctx := context.Background()

	uploaded, err := svc.Upload(ctx, "gone.bin", "application/octet-stream", []byte{1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, uploaded.ID))

	_, _, err = svc.Open(ctx, uploaded.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, uploaded.ID), store.ErrNotFound)
}
