package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/odonlab/cms/internal/cms/domain"
	"github.com/odonlab/cms/internal/cms/store"
)

type pagesRepo struct {
	db dbtx
}

const pageColumns = `id, page_name, title, subtitle, content, meta_description, meta_keywords, is_published, created_at, updated_at`

func (r *pagesRepo) ListPages(ctx context.Context) ([]domain.PageContent, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+pageColumns+` FROM pages ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []domain.PageContent
	for rows.Next() {
		p, err := scanPage(rows)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

func (r *pagesRepo) GetPageByName(ctx context.Context, name string) (domain.PageContent, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+pageColumns+` FROM pages WHERE page_name = ? ORDER BY id LIMIT 1`, name)
	p, err := scanPage(row)
	if err != nil {
		return domain.PageContent{}, mapNotFound(err)
	}
	return p, nil
}

func (r *pagesRepo) CreatePage(ctx context.Context, p domain.PageContent) error {
	content, err := marshalJSON(p.Content)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO pages (` + pageColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.ExecContext(ctx, q,
		p.ID, p.PageName, p.Title, mapOptionalString(p.Subtitle), content,
		mapOptionalString(p.MetaDescription), mapOptionalString(p.MetaKeywords),
		p.IsPublished, p.CreatedAt, p.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *pagesRepo) UpdatePage(ctx context.Context, name string, upd domain.PageContentUpdate, now time.Time) error {
	set := []string{"updated_at = ?"}
	args := []any{now}

	if upd.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *upd.Title)
	}
	if upd.Subtitle != nil {
		set = append(set, "subtitle = ?")
		args = append(args, *upd.Subtitle)
	}
	if upd.Content != nil {
		content, err := marshalJSON(*upd.Content)
		if err != nil {
			return err
		}
		set = append(set, "content = ?")
		args = append(args, content)
	}
	if upd.MetaDescription != nil {
		set = append(set, "meta_description = ?")
		args = append(args, *upd.MetaDescription)
	}
	if upd.MetaKeywords != nil {
		set = append(set, "meta_keywords = ?")
		args = append(args, *upd.MetaKeywords)
	}
	if upd.IsPublished != nil {
		set = append(set, "is_published = ?")
		args = append(args, *upd.IsPublished)
	}

	args = append(args, name)
	res, err := r.db.ExecContext(ctx,
		`UPDATE pages SET `+strings.Join(set, ", ")+` WHERE page_name = ?`, args...)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *pagesRepo) DeletePage(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pages WHERE page_name = ?`, name)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *pagesRepo) CountPages(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pages`).Scan(&n)
	return n, err
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPage(row scanner) (domain.PageContent, error) {
	var (
		p        domain.PageContent
		subtitle sql.NullString
		content  string
		metaDesc sql.NullString
		metaKeys sql.NullString
	)
	err := row.Scan(
		&p.ID, &p.PageName, &p.Title, &subtitle, &content,
		&metaDesc, &metaKeys, &p.IsPublished, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.PageContent{}, err
	}

	p.Subtitle = mapNullStringPtr(subtitle)
	p.MetaDescription = mapNullStringPtr(metaDesc)
	p.MetaKeywords = mapNullStringPtr(metaKeys)
	p.Content, err = unmarshalObject(content)
	if err != nil {
		return domain.PageContent{}, err
	}
	return p, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
