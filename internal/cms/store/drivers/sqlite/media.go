package sqlite

import (
	"context"

	"github.com/odonlab/cms/internal/cms/domain"
)

type mediaRepo struct {
	db dbtx
}

const mediaColumns = `id, filename, original_filename, file_type, file_size, file_data, uploaded_at`

func (r *mediaRepo) ListMedia(ctx context.Context) ([]domain.MediaFile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+mediaColumns+` FROM media ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []domain.MediaFile
	for rows.Next() {
		var m domain.MediaFile
		if err := rows.Scan(
			&m.ID, &m.Filename, &m.OriginalFilename, &m.FileType,
			&m.FileSize, &m.FileData, &m.UploadedAt,
		); err != nil {
			return nil, err
		}
		files = append(files, m)
	}
	return files, rows.Err()
}

func (r *mediaRepo) GetMedia(ctx context.Context, id string) (domain.MediaFile, error) {
	var m domain.MediaFile
	err := r.db.QueryRowContext(ctx,
		`SELECT `+mediaColumns+` FROM media WHERE id = ?`, id).Scan(
		&m.ID, &m.Filename, &m.OriginalFilename, &m.FileType,
		&m.FileSize, &m.FileData, &m.UploadedAt,
	)
	if err != nil {
		return domain.MediaFile{}, mapNotFound(err)
	}
	return m, nil
}

func (r *mediaRepo) CreateMedia(ctx context.Context, m domain.MediaFile) error {
	const q = `
INSERT INTO media (` + mediaColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		m.ID, m.Filename, m.OriginalFilename, m.FileType,
		m.FileSize, m.FileData, m.UploadedAt,
	)
	return mapConstraint(err)
}

func (r *mediaRepo) DeleteMedia(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM media WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
