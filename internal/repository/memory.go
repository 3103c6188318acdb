package repository

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/google/uuid"
)

// MemoryStore implements Store with in-memory maps. It backs the test suite
// and STORAGE=memory demo runs.
type MemoryStore struct {
	mu         sync.RWMutex
	products   map[string]models.Product
	categories map[string]models.Category
	reviews    map[string]models.Review
	users      map[string]models.User // keyed by lower-cased email
	orders     map[string]models.Order
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:   make(map[string]models.Product),
		categories: make(map[string]models.Category),
		reviews:    make(map[string]models.Review),
		users:      make(map[string]models.User),
		orders:     make(map[string]models.Order),
	}
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Close() {}

// FindPage returns the requested window of matching products
func (s *MemoryStore) FindPage(ctx context.Context, q ProductQuery) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := s.matching(q)
	slices.SortFunc(matched, func(a, b models.Product) int {
		if q.Less(a, b) {
			return -1
		}
		if q.Less(b, a) {
			return 1
		}
		return 0
	})

	start := min(max(q.Offset, 0), len(matched))
	end := len(matched)
	if q.Limit > 0 {
		end = min(start+q.Limit, len(matched))
	}
	return matched[start:end], nil
}

// Count returns the number of products matching the predicate
func (s *MemoryStore) Count(ctx context.Context, q ProductQuery) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.matching(q)), nil
}

func (s *MemoryStore) matching(q ProductQuery) []models.Product {
	matched := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		category := s.categories[p.CategoryID]
		if q.Matches(p, category.Slug) {
			matched = append(matched, s.withCategory(p))
		}
	}
	return matched
}

func (s *MemoryStore) withCategory(p models.Product) models.Product {
	if c, ok := s.categories[p.CategoryID]; ok {
		p.Category = &models.CategorySummary{ID: c.ID, Name: c.Name, Slug: c.Slug}
	}
	return p
}

// FindActiveByID returns an active product by its ID
func (s *MemoryStore) FindActiveByID(ctx context.Context, id string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, exists := s.products[id]
	if !exists || !product.IsActive {
		return nil, ErrNotFound
	}
	product = s.withCategory(product)
	return &product, nil
}

// FindActiveByIDs returns the active products among ids; unknown ids are skipped
func (s *MemoryStore) FindActiveByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok && p.IsActive {
			products = append(products, p)
		}
	}
	return products, nil
}

// RecentReviews returns up to limit reviews for a product, newest first
func (s *MemoryStore) RecentReviews(ctx context.Context, productID string, limit int) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	authors := make(map[string]models.ReviewAuthor, len(s.users))
	for _, u := range s.users {
		authors[u.ID] = models.ReviewAuthor{FirstName: u.FirstName, LastName: u.LastName}
	}

	reviews := make([]models.Review, 0)
	for _, r := range s.reviews {
		if r.ProductID != productID {
			continue
		}
		if author, ok := authors[r.UserID]; ok {
			r.User = author
		}
		reviews = append(reviews, r)
	}
	slices.SortFunc(reviews, func(a, b models.Review) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
	if len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}

// ListActive returns active categories ordered by name
func (s *MemoryStore) ListActive(ctx context.Context) ([]models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		if c.IsActive {
			categories = append(categories, c)
		}
	}
	slices.SortFunc(categories, func(a, b models.Category) int {
		return strings.Compare(a.Name, b.Name)
	})
	return categories, nil
}

// Create stores an order
func (s *MemoryStore) Create(ctx context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *order
	stored.Items = slices.Clone(order.Items)
	s.orders[order.ID] = stored
	return nil
}

// Order returns a stored order; used by tests to verify what was persisted
func (s *MemoryStore) Order(id string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	return o, ok
}

// OrderCount returns the number of stored orders
func (s *MemoryStore) OrderCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}

func (s *MemoryStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemoryStore) Stats(ctx context.Context) (models.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.Stats{
		Users:       len(s.users),
		Products:    len(s.products),
		Orders:      len(s.orders),
		Categories:  len(s.categories),
		LastUpdated: time.Now().UTC(),
	}, nil
}

func (s *MemoryStore) UpsertCategory(ctx context.Context, c *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.categories {
		if existing.Slug == c.Slug {
			c.ID = id
			c.CreatedAt = existing.CreatedAt
			break
		}
	}
	stampNew(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	s.categories[c.ID] = *c
	return nil
}

func (s *MemoryStore) UpsertProduct(ctx context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.products {
		if existing.SKU == p.SKU {
			p.ID = id
			p.CreatedAt = existing.CreatedAt
			break
		}
	}
	stampNew(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	stored := *p
	stored.Category = nil
	stored.Reviews = nil
	s.products[p.ID] = stored
	return nil
}

func (s *MemoryStore) UpsertUser(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(u.Email)
	if existing, ok := s.users[key]; ok {
		u.ID = existing.ID
		u.CreatedAt = existing.CreatedAt
	}
	stampNew(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	s.users[key] = *u
	return nil
}

func (s *MemoryStore) UpsertReview(ctx context.Context, r *models.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stampNew(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	s.reviews[r.ID] = *r
	return nil
}

func stampNew(id *string, createdAt, updatedAt *time.Time) {
	now := time.Now().UTC()
	if *id == "" {
		*id = uuid.NewString()
	}
	if createdAt.IsZero() {
		*createdAt = now
	}
	*updatedAt = now
}
