package service

import (
	"context"
	"testing"

	"github.com/odonlab/cms/internal/cms/domain"
	"github.com/odonlab/cms/internal/cms/store"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_FirstGetCreatesDefaults(t *testing.T) {
	svc := &SettingsService{Store: newTestStore(t)}
	ctx := context.Background()

	first, err := svc.Get(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.Equal(t, domain.DefaultSettings().SiteName, first.SiteName)

	// Second read must return the same singleton, not a new one.
	second, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
}

func TestSettingsService_UpdatePartial(t *testing.T) {
	svc := &SettingsService{Store: newTestStore(t)}
	ctx := context.Background()

	created, err := svc.Get(ctx)
	require.NoError(t, err)

	colors := map[string]string{"primary": "#112233"}
	updated, err := svc.Update(ctx, domain.SiteSettingsUpdate{
		SiteName:    strPtr("Renamed Lab"),
		ThemeColors: &colors,
	})
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "Renamed Lab", updated.SiteName)
	require.Equal(t, "#112233", updated.ThemeColors["primary"])
	require.Equal(t, created.ContactEmail, updated.ContactEmail)
}

func TestSettingsService_UpdateBeforeCreate(t *testing.T) {
	svc := &SettingsService{Store: newTestStore(t)}

	_, err := svc.Update(context.Background(), domain.SiteSettingsUpdate{
		SiteName: strPtr("nope"),
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}
