package repository

import (
	"context"
	"errors"

	"github.com/Lixing-Zhang/storefront-api/internal/models"
)

var (
	// ErrNotFound is returned when a single-record lookup matches nothing.
	ErrNotFound = errors.New("record not found")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	FindPage(ctx context.Context, q ProductQuery) ([]models.Product, error)
	Count(ctx context.Context, q ProductQuery) (int, error)
	FindActiveByID(ctx context.Context, id string) (*models.Product, error)
	FindActiveByIDs(ctx context.Context, ids []string) ([]models.Product, error)
	RecentReviews(ctx context.Context, productID string, limit int) ([]models.Review, error)
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	ListActive(ctx context.Context) ([]models.Category, error)
}

// OrderRepository persists orders. Create writes the order and its items atomically.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type StatsRepository interface {
	Stats(ctx context.Context) (models.Stats, error)
}

// Seeder upserts demo data. Upserts key on slug, sku, email and review id
// and write the stored id back into the argument.
type Seeder interface {
	UpsertCategory(ctx context.Context, c *models.Category) error
	UpsertProduct(ctx context.Context, p *models.Product) error
	UpsertUser(ctx context.Context, u *models.User) error
	UpsertReview(ctx context.Context, r *models.Review) error
}

// Store is the full persistence surface used by the server and the seed command
type Store interface {
	ProductRepository
	CategoryRepository
	OrderRepository
	UserRepository
	StatsRepository
	Seeder
	Ping(ctx context.Context) error
	Close()
}
