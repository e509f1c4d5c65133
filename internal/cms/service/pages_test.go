package service

import (
	"context"
	"testing"

	"github.com/odonlab/cms/internal/cms/domain"
	"github.com/odonlab/cms/internal/cms/store"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestPageService_CreateAndGet(t *testing.T) {
	svc := &PageService{Store: newTestStore(t)}
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.PageContent{
		PageName: "about",
		Title:    "About",
		Subtitle: strPtr("Who we are"),
		Content:  map[string]any{"body": "hello"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := svc.GetByName(ctx, "about")
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, "About", got.Title)
	require.Equal(t, "hello", got.Content["body"])
}

func TestPageService_CreateNilContentBecomesEmptyObject(t *testing.T) {
	svc := &PageService{Store: newTestStore(t)}

	created, err := svc.Create(context.Background(), domain.PageContent{
		PageName: "bare",
		Title:    "Bare",
	})
	require.NoError(t, err)
	require.NotNil(t, created.Content)
	require.Empty(t, created.Content)
}

func TestPageService_PartialUpdateLeavesOtherFields(t *testing.T) {
	svc := &PageService{Store: newTestStore(t)}
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.PageContent{
		PageName:        "home",
		Title:           "Home",
		Subtitle:        strPtr("Welcome"),
		MetaDescription: strPtr("landing page"),
		Content:         map[string]any{"hero": "big"},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "home", domain.PageContentUpdate{
		Title: strPtr("New Home"),
	})
	require.NoError(t, err)
	require.Equal(t, "New Home", updated.Title)
	require.Equal(t, "Welcome", *updated.Subtitle)
	require.Equal(t, "landing page", *updated.MetaDescription)
	require.Equal(t, "big", updated.Content["hero"])
	require.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestPageService_EmptyUpdateStillTouchesTimestamp(t *testing.T) {
	svc := &PageService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.PageContent{PageName: "home", Title: "Home"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "home", domain.PageContentUpdate{})
	require.NoError(t, err)
	require.Equal(t, "Home", updated.Title)
	require.False(t, updated.UpdatedAt.IsZero())
}

func TestPageService_UpdateMissingPage(t *testing.T) {
	svc := &PageService{Store: newTestStore(t)}

	_, err := svc.Update(context.Background(), "ghost", domain.PageContentUpdate{
		Title: strPtr("nope"),
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPageService_DeleteThenGet(t *testing.T) {
	svc := &PageService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.PageContent{PageName: "temp", Title: "Temp"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "temp"))

	_, err = svc.GetByName(ctx, "temp")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, "temp"), store.ErrNotFound)
}
