package events

import (
	"context"
	"sort"

	"github.com/gracechapel/gracechapel/internal/models"
)

// Service encapsulates event operations used by the handler layer.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns events sorted ascending by event date, the order the calendar
// pages render them in. EventDate is YYYY-MM-DD so the string sort is exact.
func (s *Service) List(ctx context.Context) ([]models.Event, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].EventDate < list[j].EventDate
	})
	return list, nil
}

func (s *Service) Add(ctx context.Context, e models.Event) (models.Event, error) {
	return s.repo.Add(ctx, e)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) EnsureSeed(ctx context.Context) error {
	return s.repo.EnsureSeed(ctx)
}
