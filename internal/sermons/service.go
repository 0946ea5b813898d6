package sermons

import (
	"context"

	"github.com/gracechapel/gracechapel/internal/models"
)

// Service encapsulates sermon operations used by the handler layer.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns the collection in storage order (newest additions first, seed
// order before any additions).
func (s *Service) List(ctx context.Context) ([]models.Sermon, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*models.Sermon, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Add(ctx context.Context, sermon models.Sermon) (models.Sermon, error) {
	return s.repo.Add(ctx, sermon)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) EnsureSeed(ctx context.Context) error {
	return s.repo.EnsureSeed(ctx)
}
