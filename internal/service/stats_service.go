package service

import (
	"context"

	"github.com/Lixing-Zhang/storefront-api/internal/models"
	"github.com/Lixing-Zhang/storefront-api/internal/repository"
)

type StatsService struct {
	repo repository.StatsRepository
}

func NewStatsService(repo repository.StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

// Stats returns store-wide record counts
func (s *StatsService) Stats(ctx context.Context) (models.Stats, error) {
	return s.repo.Stats(ctx)
}
