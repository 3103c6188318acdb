// Package repotest provides store wrappers for exercising persistence
// failures in tests.
package repotest

import (
	"context"
	"sync"

	"github.com/Lixing-Zhang/storefront-api/internal/apperror"
	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/Lixing-Zhang/storefront-api/internal/repository"
)

// FaultyStore delegates to an inner store until Fail is called. From then on
// every read, order write and ping returns the injected error, wrapped as a
// persistence error like the postgres store does. Seed upserts always pass
// through so fixtures can still be loaded.
type FaultyStore struct {
	repository.Store

	mu  sync.RWMutex
	err error
}

var _ repository.Store = (*FaultyStore)(nil)

// NewFaultyStore wraps inner
func NewFaultyStore(inner repository.Store) *FaultyStore {
	return &FaultyStore{Store: inner}
}

// Fail makes subsequent calls return err. A nil err restores delegation.
func (s *FaultyStore) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *FaultyStore) failure() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *FaultyStore) Ping(ctx context.Context) error {
	if err := s.failure(); err != nil {
		return err
	}
	return s.Store.Ping(ctx)
}

func (s *FaultyStore) FindPage(ctx context.Context, q repository.ProductQuery) ([]models.Product, error) {
	if err := s.failure(); err != nil {
		return nil, apperror.Persistence("find products", err)
	}
	return s.Store.FindPage(ctx, q)
}

func (s *FaultyStore) Count(ctx context.Context, q repository.ProductQuery) (int, error) {
	if err := s.failure(); err != nil {
		return 0, apperror.Persistence("count products", err)
	}
	return s.Store.Count(ctx, q)
}

func (s *FaultyStore) FindActiveByID(ctx context.Context, id string) (*models.Product, error) {
	if err := s.failure(); err != nil {
		return nil, apperror.Persistence("find product", err)
	}
	return s.Store.FindActiveByID(ctx, id)
}

func (s *FaultyStore) FindActiveByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	if err := s.failure(); err != nil {
		return nil, apperror.Persistence("find products by id", err)
	}
	return s.Store.FindActiveByIDs(ctx, ids)
}

func (s *FaultyStore) RecentReviews(ctx context.Context, productID string, limit int) ([]models.Review, error) {
	if err := s.failure(); err != nil {
		return nil, apperror.Persistence("find reviews", err)
	}
	return s.Store.RecentReviews(ctx, productID, limit)
}

func (s *FaultyStore) ListActive(ctx context.Context) ([]models.Category, error) {
	if err := s.failure(); err != nil {
		return nil, apperror.Persistence("list categories", err)
	}
	return s.Store.ListActive(ctx)
}

func (s *FaultyStore) Create(ctx context.Context, order *models.Order) error {
	if err := s.failure(); err != nil {
		return apperror.Persistence("create order", err)
	}
	return s.Store.Create(ctx, order)
}

func (s *FaultyStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := s.failure(); err != nil {
		return nil, apperror.Persistence("find user", err)
	}
	return s.Store.FindByEmail(ctx, email)
}

func (s *FaultyStore) Stats(ctx context.Context) (models.Stats, error) {
	if err := s.failure(); err != nil {
		return models.Stats{}, apperror.Persistence("load stats", err)
	}
	return s.Store.Stats(ctx)
}
