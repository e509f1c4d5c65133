package service

import (
	"context"
	"time"

	"github.com/odonlab/cms/internal/cms/domain"
	"github.com/odonlab/cms/internal/cms/store"
	"github.com/odonlab/cms/pkg/idx"
)

// PageService is document CRUD over the pages collection. Handlers own the
// guard levels; the service stamps IDs and timestamps.
type PageService struct {
	Store store.Store
}

func (s *PageService) List(ctx context.Context) ([]domain.PageContent, error) {
	return s.Store.Pages().ListPages(ctx)
}

func (s *PageService) GetByName(ctx context.Context, name string) (domain.PageContent, error) {
	return s.Store.Pages().GetPageByName(ctx, name)
}

// Create assigns the ID and both timestamps, then inserts.
func (s *PageService) Create(ctx context.Context, p domain.PageContent) (domain.PageContent, error) {
	now := time.Now().UTC()
	p.ID = idx.New().String()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Content == nil {
		p.Content = map[string]any{}
	}

	if err := s.Store.Pages().CreatePage(ctx, p); err != nil {
		return domain.PageContent{}, err
	}
	return p, nil
}

// Update applies the supplied fields only and refreshes updated_at, then
// returns the stored document. updated_at moves even when the update body is
// empty, matching create/update semantics elsewhere.
func (s *PageService) Update(ctx context.Context, name string, upd domain.PageContentUpdate) (domain.PageContent, error) {
	if err := s.Store.Pages().UpdatePage(ctx, name, upd, time.Now().UTC()); err != nil {
		return domain.PageContent{}, err
	}
	return s.Store.Pages().GetPageByName(ctx, name)
}

func (s *PageService) Delete(ctx context.Context, name string) error {
	return s.Store.Pages().DeletePage(ctx, name)
}
