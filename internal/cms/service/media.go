package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/odonlab/cms/internal/cms/domain"
	"github.com/odonlab/cms/internal/cms/store"
	"github.com/odonlab/cms/pkg/idx"
	"github.com/odonlab/cms/pkg/slogx"
)

// MediaService stores uploaded files inline in the database, base64 encoded.
// Files are immutable once uploaded; the only mutations are create and delete.
type MediaService struct {
	Store store.Store
}

// Upload records the raw bytes under a server-generated collision-resistant
// filename (ULID prefix keeps the original name readable).
func (s *MediaService) Upload(ctx context.Context, originalFilename, mimeType string, data []byte) (domain.MediaFile, error) {
	id := idx.New().String()

	file := domain.MediaFile{
		ID:               id,
		Filename:         fmt.Sprintf("%s_%s", id, originalFilename),
		OriginalFilename: originalFilename,
		FileType:         mimeType,
		FileSize:         int64(len(data)),
		FileData:         base64.StdEncoding.EncodeToString(data),
		UploadedAt:       time.Now().UTC(),
	}

	if err := s.Store.Media().CreateMedia(ctx, file); err != nil {
		return domain.MediaFile{}, err
	}

	slogx.FromContext(ctx).Info("media uploaded",
		"media_id", file.ID,
		"original_filename", originalFilename,
		"file_size", file.FileSize,
	)
	return file, nil
}

func (s *MediaService) List(ctx context.Context) ([]domain.MediaFile, error) {
	return s.Store.Media().ListMedia(ctx)
}

// Open returns the stored record along with the decoded payload, ready to
// stream back with the original MIME type.
func (s *MediaService) Open(ctx context.Context, id string) (domain.MediaFile, []byte, error) {
	file, err := s.Store.Media().GetMedia(ctx, id)
	if err != nil {
		return domain.MediaFile{}, nil, err
	}

	data, err := base64.StdEncoding.DecodeString(file.FileData)
	if err != nil {
		return domain.MediaFile{}, nil, fmt.Errorf("decode stored media %s: %w", id, err)
	}
	return file, data, nil
}

func (s *MediaService) Delete(ctx context.Context, id string) error {
	return s.Store.Media().DeleteMedia(ctx, id)
}
