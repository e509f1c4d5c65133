package service

import (
	"context"
	"testing"

	"github.com/odonlab/cms/internal/cms/domain"
	"github.com/odonlab/cms/internal/cms/store"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestProjectService_ListOrdersByDisplayOrder(t *testing.T) {
	svc := &ProjectService{Store: newTestStore(t)}
	ctx := context.Background()

	// Insert out of order on purpose.
	for _, p := range []domain.Project{
		{Title: "Third", DisplayOrder: 3, IsPublished: true},
		{Title: "First", DisplayOrder: 1, IsPublished: true},
		{Title: "Second", DisplayOrder: 2, IsPublished: true},
	} {
		_, err := svc.Create(ctx, p)
		require.NoError(t, err)
	}

	projects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	require.Equal(t, "First", projects[0].Title)
	require.Equal(t, "Second", projects[1].Title)
	require.Equal(t, "Third", projects[2].Title)
}

func TestProjectService_PartialUpdate(t *testing.T) {
	svc := &ProjectService{Store: newTestStore(t)}
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Project{
		Title:        "Robotics",
		Description:  "autonomous things",
		KeyAreas:     "control, vision",
		Icon:         "🤖",
		DisplayOrder: 1,
		IsPublished:  true,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, domain.ProjectUpdate{
		DisplayOrder: intPtr(5),
	})
	require.NoError(t, err)
	require.Equal(t, 5, updated.DisplayOrder)
	require.Equal(t, "Robotics", updated.Title)
	require.Equal(t, "🤖", updated.Icon)
	require.True(t, updated.IsPublished)
}

func TestProjectService_UpdateMissing(t *testing.T) {
	svc := &ProjectService{Store: newTestStore(t)}

	_, err := svc.Update(context.Background(), "01J00000000000000000000000", domain.ProjectUpdate{
		Title: strPtr("nope"),
	})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestProjectService_DeleteThenGet(t *testing.T) {
	svc := &ProjectService{Store: newTestStore(t)}
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.Project{Title: "Temp", DisplayOrder: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, svc.Delete(ctx, created.ID), store.ErrNotFound)
}
