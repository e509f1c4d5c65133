package service

import (
	"context"
	"time"

	"github.com/odonlab/cms/internal/cms/domain"
	"github.com/odonlab/cms/internal/cms/store"
	"github.com/odonlab/cms/pkg/idx"
)

// ProjectService is document CRUD over the projects collection. Listings are
// always ordered ascending by the display_order sort key.
type ProjectService struct {
	Store store.Store
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.Store.Projects().ListProjects(ctx)
}

func (s *ProjectService) Get(ctx context.Context, id string) (domain.Project, error) {
	return s.Store.Projects().GetProject(ctx, id)
}

// Create assigns the ID and both timestamps, then inserts.
func (s *ProjectService) Create(ctx context.Context, p domain.Project) (domain.Project, error) {
	now := time.Now().UTC()
	p.ID = idx.New().String()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.Store.Projects().CreateProject(ctx, p); err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

// Update applies the supplied fields only and refreshes updated_at, then
// returns the stored document.
func (s *ProjectService) Update(ctx context.Context, id string, upd domain.ProjectUpdate) (domain.Project, error) {
	if err := s.Store.Projects().UpdateProject(ctx, id, upd, time.Now().UTC()); err != nil {
		return domain.Project{}, err
	}
	return s.Store.Projects().GetProject(ctx, id)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.Store.Projects().DeleteProject(ctx, id)
}
