package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/odonlab/cms/internal/cms/domain"
)

type projectsRepo struct {
	db dbtx
}

const projectColumns = `id, title, description, key_areas, icon, display_order, is_published, created_at, updated_at`

func (r *projectsRepo) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY display_order ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.KeyAreas, &p.Icon,
			&p.DisplayOrder, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *projectsRepo) GetProject(ctx context.Context, id string) (domain.Project, error) {
	var p domain.Project
	err := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.KeyAreas, &p.Icon,
		&p.DisplayOrder, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	const q = `
INSERT INTO projects (` + projectColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		p.ID, p.Title, p.Description, p.KeyAreas, p.Icon,
		p.DisplayOrder, p.IsPublished, p.CreatedAt, p.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *projectsRepo) UpdateProject(ctx context.Context, id string, upd domain.ProjectUpdate, now time.Time) error {
	set := []string{"updated_at = ?"}
	args := []any{now}

	if upd.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.KeyAreas != nil {
		set = append(set, "key_areas = ?")
		args = append(args, *upd.KeyAreas)
	}
	if upd.Icon != nil {
		set = append(set, "icon = ?")
		args = append(args, *upd.Icon)
	}
	if upd.DisplayOrder != nil {
		set = append(set, "display_order = ?")
		args = append(args, *upd.DisplayOrder)
	}
	if upd.IsPublished != nil {
		set = append(set, "is_published = ?")
		args = append(args, *upd.IsPublished)
	}

	args = append(args, id)
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET `+strings.Join(set, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *projectsRepo) DeleteProject(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
