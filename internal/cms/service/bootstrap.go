package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/odonlab/cms/internal/cms/domain"
	"github.com/odonlab/cms/internal/cms/store"
	"github.com/odonlab/cms/pkg/cryptox"
	"github.com/odonlab/cms/pkg/idx"
	"github.com/odonlab/cms/pkg/slogx"
)

// BootstrapService makes a fresh deployment usable: a default admin account
// and a minimal set of site content. Every step is existence-gated so
// running it against a populated database changes nothing.
type BootstrapService struct {
	Store store.Store
}

// EnsureDefaults runs at startup, before the HTTP server accepts traffic.
func (s *BootstrapService) EnsureDefaults(ctx context.Context) error {
	if err := s.ensureAdminUser(ctx); err != nil {
		return fmt.Errorf("bootstrap admin user: %w", err)
	}
	if err := s.ensureSeedContent(ctx); err != nil {
		return fmt.Errorf("bootstrap seed content: %w", err)
	}
	return nil
}

func (s *BootstrapService) ensureAdminUser(ctx context.Context) error {
	_, err := s.Store.Users().GetUserByUsername(ctx, domain.DefaultAdminUsername)
	if err == nil {
		return nil // admin already exists, never overwrite
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := cryptox.HashPassword(domain.DefaultAdminPassword)
	if err != nil {
		return err
	}

	admin := domain.User{
		ID:           idx.New().String(),
		Username:     domain.DefaultAdminUsername,
		Email:        domain.DefaultAdminEmail,
		PasswordHash: hash,
		IsActive:     true,
		IsAdmin:      true,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Store.Users().CreateUser(ctx, admin); err != nil {
		// A concurrent boot may have created it first; that's fine.
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil
		}
		return err
	}

	slogx.FromContext(ctx).Info("default admin user created",
		"username", domain.DefaultAdminUsername)
	return nil
}

func (s *BootstrapService) ensureSeedContent(ctx context.Context) error {
	count, err := s.Store.Pages().CountPages(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil // existing content, never reseed
	}

	now := time.Now().UTC()
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, page := range domain.SeedPages() {
			page.ID = idx.New().String()
			page.CreatedAt = now
			page.UpdatedAt = now
			if err := tx.Pages().CreatePage(ctx, page); err != nil {
				return err
			}
		}
		for _, project := range domain.SeedProjects() {
			project.ID = idx.New().String()
			project.CreatedAt = now
			project.UpdatedAt = now
			if err := tx.Projects().CreateProject(ctx, project); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("seed content created",
		"pages", len(domain.SeedPages()),
		"projects", len(domain.SeedProjects()),
	)
	return nil
}
