package repotest

import (
	"context"
	"errors"
	"testing"

	"github.com/Lixing-Zhang/storefront-api/internal/apperror"
	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/Lixing-Zhang/storefront-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaultyStore(t *testing.T) {
	inner := repository.NewMemoryStore()
	store := NewFaultyStore(inner)
	ctx := context.Background()
	cause := errors.New("disk on fire")

	require.NoError(t, store.Ping(ctx))
	require.NoError(t, store.Create(ctx, &models.Order{ID: "before"}))
	assert.Equal(t, 1, inner.OrderCount())

	store.Fail(cause)

	tests := []struct {
		name string
		call func() error
	}{
		{name: "find page", call: func() error { _, err := store.FindPage(ctx, repository.ProductQuery{}); return err }},
		{name: "count", call: func() error { _, err := store.Count(ctx, repository.ProductQuery{}); return err }},
		{name: "find by id", call: func() error { _, err := store.FindActiveByID(ctx, "x"); return err }},
		{name: "find by ids", call: func() error { _, err := store.FindActiveByIDs(ctx, []string{"x"}); return err }},
		{name: "reviews", call: func() error { _, err := store.RecentReviews(ctx, "x", 10); return err }},
		{name: "categories", call: func() error { _, err := store.ListActive(ctx); return err }},
		{name: "create order", call: func() error { return store.Create(ctx, &models.Order{ID: "after"}) }},
		{name: "find user", call: func() error { _, err := store.FindByEmail(ctx, "a@b.c"); return err }},
		{name: "stats", call: func() error { _, err := store.Stats(ctx); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			assert.ErrorIs(t, err, cause)
			assert.Equal(t, apperror.KindPersistence, apperror.KindOf(err))
		})
	}

	assert.ErrorIs(t, store.Ping(ctx), cause)
	assert.Equal(t, 1, inner.OrderCount())

	// seed upserts keep working while reads fail
	require.NoError(t, store.UpsertCategory(ctx, &models.Category{Name: "Books", Slug: "books", IsActive: true}))

	store.Fail(nil)
	categories, err := store.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}
