package service

import (
	"context"
	"errors"
	"time"

	"github.com/odonlab/cms/internal/cms/domain"
	"github.com/odonlab/cms/internal/cms/store"
	"github.com/odonlab/cms/pkg/idx"
	"github.com/odonlab/cms/pkg/slogx"
)

// SettingsService manages the singleton site settings document.
type SettingsService struct {
	Store store.Store
}

// Get returns the settings singleton, creating it with defaults on first
// read. The create runs inside a transaction with a re-check so two
// concurrent first reads cannot insert two rows.
func (s *SettingsService) Get(ctx context.Context) (domain.SiteSettings, error) {
	settings, err := s.Store.Settings().GetSettings(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.SiteSettings{}, err
	}

	settings = domain.DefaultSettings()
	settings.ID = idx.New().String()
	settings.UpdatedAt = time.Now().UTC()

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Settings().GetSettings(ctx)
		if err == nil {
			settings = existing // lost the race, keep the winner's row
			return nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}
		return tx.Settings().CreateSettings(ctx, settings)
	})
	if err != nil {
		return domain.SiteSettings{}, err
	}

	slogx.FromContext(ctx).Info("site settings initialized with defaults")
	return settings, nil
}

// Update applies the supplied fields to the singleton and refreshes
// updated_at. Fails with store.ErrNotFound when the singleton is absent.
func (s *SettingsService) Update(ctx context.Context, upd domain.SiteSettingsUpdate) (domain.SiteSettings, error) {
	if err := s.Store.Settings().UpdateSettings(ctx, upd, time.Now().UTC()); err != nil {
		return domain.SiteSettings{}, err
	}
	return s.Store.Settings().GetSettings(ctx)
}
