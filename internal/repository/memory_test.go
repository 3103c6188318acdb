package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newFixtureStore seeds two categories and count products in "electronics"
// with increasing createdAt, plus one inactive product.
func newFixtureStore(t *testing.T, count int) (*MemoryStore, []models.Product) {
	t.Helper()
	ctx := context.Background()
	store := NewMemoryStore()

	electronics := &models.Category{Name: "Electronics", Slug: "electronics", IsActive: true}
	clothing := &models.Category{Name: "Clothing", Slug: "clothing", IsActive: true}
	hidden := &models.Category{Name: "Archive", Slug: "archive", IsActive: false}
	for _, c := range []*models.Category{electronics, clothing, hidden} {
		require.NoError(t, store.UpsertCategory(ctx, c))
	}

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	products := make([]models.Product, 0, count)
	for i := range count {
		p := &models.Product{
			Name:       fmt.Sprintf("Gadget %02d", i),
			Price:      decimal.NewFromInt(int64(10 + i)),
			SKU:        fmt.Sprintf("GAD-%02d", i),
			Inventory:  5,
			IsActive:   true,
			CategoryID: electronics.ID,
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, store.UpsertProduct(ctx, p))
		products = append(products, *p)
	}

	require.NoError(t, store.UpsertProduct(ctx, &models.Product{
		Name: "iPhone 15 Pro", Price: decimal.NewFromInt(999), SKU: "IPH-15", IsActive: true,
		CategoryID: clothing.ID, CreatedAt: base,
	}))
	require.NoError(t, store.UpsertProduct(ctx, &models.Product{
		Name: "Retired Phone", Price: decimal.NewFromInt(1), SKU: "OLD-1", IsActive: false,
		CategoryID: electronics.ID, CreatedAt: base,
	}))

	return store, products
}

func TestMemoryStore_FindPage(t *testing.T) {
	store, products := newFixtureStore(t, 25)
	ctx := context.Background()
	q := ProductQuery{CategorySlug: "electronics", SortDesc: true, Limit: 12, Offset: 12}

	page, err := store.FindPage(ctx, q)
	require.NoError(t, err)
	require.Len(t, page, 12)
	// newest first: second page starts at index 25-1-12
	assert.Equal(t, products[12].ID, page[0].ID)
	assert.Equal(t, "electronics", page[0].Category.Slug)

	total, err := store.Count(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, 25, total)

	q.Offset = 24
	last, err := store.FindPage(ctx, q)
	require.NoError(t, err)
	assert.Len(t, last, 1)

	q.Offset = 100
	beyond, err := store.FindPage(ctx, q)
	require.NoError(t, err)
	assert.Empty(t, beyond)

	q.Offset = -24
	negative, err := store.FindPage(ctx, q)
	require.NoError(t, err)
	assert.Len(t, negative, 12)
}

func TestMemoryStore_SearchAndInactive(t *testing.T) {
	store, _ := newFixtureStore(t, 3)
	ctx := context.Background()

	found, err := store.FindPage(ctx, ProductQuery{Search: "phone", Limit: 12})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "iPhone 15 Pro", found[0].Name)

	total, err := store.Count(ctx, ProductQuery{})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
}

func TestMemoryStore_FindActiveByID(t *testing.T) {
	store, products := newFixtureStore(t, 1)
	ctx := context.Background()

	p, err := store.FindActiveByID(ctx, products[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Gadget 00", p.Name)
	require.NotNil(t, p.Category)
	assert.Equal(t, "Electronics", p.Category.Name)

	_, err = store.FindActiveByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_FindActiveByIDs(t *testing.T) {
	store, products := newFixtureStore(t, 2)

	found, err := store.FindActiveByIDs(context.Background(), []string{products[1].ID, "missing", products[0].ID})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, products[1].ID, found[0].ID)
}

func TestMemoryStore_RecentReviews(t *testing.T) {
	store, products := newFixtureStore(t, 1)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := range 12 {
		require.NoError(t, store.UpsertReview(ctx, &models.Review{
			ID:        fmt.Sprintf("r%02d", i),
			ProductID: products[0].ID,
			Rating:    5,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	reviews, err := store.RecentReviews(ctx, products[0].ID, 10)
	require.NoError(t, err)
	require.Len(t, reviews, 10)
	assert.Equal(t, "r11", reviews[0].ID)
	assert.Equal(t, "r02", reviews[9].ID)

	none, err := store.RecentReviews(ctx, "other", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryStore_ListActive(t *testing.T) {
	store, _ := newFixtureStore(t, 0)

	categories, err := store.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Clothing", categories[0].Name)
	assert.Equal(t, "Electronics", categories[1].Name)
}

func TestMemoryStore_Upserts(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := &models.Category{Name: "Books", Slug: "books", IsActive: true}
	require.NoError(t, store.UpsertCategory(ctx, first))
	again := &models.Category{Name: "Books & Media", Slug: "books", IsActive: true}
	require.NoError(t, store.UpsertCategory(ctx, again))
	assert.Equal(t, first.ID, again.ID)

	u := &models.User{Email: "Admin@Example.com", Role: models.RoleAdmin}
	require.NoError(t, store.UpsertUser(ctx, u))
	found, err := store.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = store.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Categories)
	assert.Equal(t, 1, stats.Users)
}

func TestMemoryStore_CreateOrder(t *testing.T) {
	store := NewMemoryStore()
	order := &models.Order{ID: "order-1", Items: []models.OrderItem{{ID: "i1", Quantity: 2}}}

	require.NoError(t, store.Create(context.Background(), order))
	order.Items[0].Quantity = 9

	stored, ok := store.Order("order-1")
	require.True(t, ok)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, 1, store.OrderCount())
}
