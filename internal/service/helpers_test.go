package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Lixing-Zhang/storefront-api/internal/config"
	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/Lixing-Zhang/storefront-api/internal/repository"
	"github.com/Lixing-Zhang/storefront-api/internal/repository/repotest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testPricer() Pricer {
	return NewPricer(config.PricingConfig{
		ShippingCost: decimal.RequireFromString("10.00"),
		TaxRate:      decimal.RequireFromString("0.10"),
	})
}

type catalog struct {
	store    *repository.MemoryStore
	faulty   *repotest.FaultyStore // wraps store
	ten      models.Product // 10.00, inventory 5
	quarter  models.Product // 0.25, inventory 100
	inactive models.Product
	gadgets  []models.Product
}

// newCatalog builds a store with a fixed set of priced products and
// gadgetCount extra "Gadget" products in the electronics category.
func newCatalog(t *testing.T, gadgetCount int) *catalog {
	t.Helper()
	ctx := context.Background()
	store := repository.NewMemoryStore()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	electronics := &models.Category{Name: "Electronics", Slug: "electronics", IsActive: true}
	books := &models.Category{Name: "Books", Slug: "books", IsActive: true}
	require.NoError(t, store.UpsertCategory(ctx, electronics))
	require.NoError(t, store.UpsertCategory(ctx, books))

	add := func(p models.Product) models.Product {
		require.NoError(t, store.UpsertProduct(ctx, &p))
		return p
	}

	c := &catalog{store: store, faulty: repotest.NewFaultyStore(store)}
	c.ten = add(models.Product{
		Name: "Ten Dollar Book", Price: decimal.RequireFromString("10.00"), SKU: "BOOK-10",
		Inventory: 5, Images: []string{"https://img/ten.jpg"}, IsActive: true, CategoryID: books.ID,
		Brand: "Acme", CreatedAt: base.Add(-time.Hour),
	})
	c.quarter = add(models.Product{
		Name: "Sticker", Description: "Vinyl sticker", Price: decimal.RequireFromString("0.25"), SKU: "STK-1",
		Inventory: 100, IsActive: true, CategoryID: books.ID, CreatedAt: base.Add(-2 * time.Hour),
	})
	c.inactive = add(models.Product{
		Name: "Discontinued", Price: decimal.RequireFromString("5.00"), SKU: "OLD-1",
		Inventory: 5, IsActive: false, CategoryID: books.ID, CreatedAt: base,
	})
	for i := range gadgetCount {
		c.gadgets = append(c.gadgets, add(models.Product{
			Name:       fmt.Sprintf("Gadget %02d", i),
			Price:      decimal.NewFromInt(int64(100 + i)),
			SKU:        fmt.Sprintf("GAD-%02d", i),
			Inventory:  1,
			IsActive:   true,
			CategoryID: electronics.ID,
			CreatedAt:  base.Add(time.Duration(i+1) * time.Hour),
		}))
	}
	return c
}
