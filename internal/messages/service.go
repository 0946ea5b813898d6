package messages

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/gracechapel/gracechapel/internal/models"
)

// Service encapsulates contact inbox operations.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// List returns messages newest first (created_at descending).
func (s *Service) List(ctx context.Context) ([]models.Message, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// Send stores a contact form submission. Callers observe only success; the
// created message is an admin-side concern.
func (s *Service) Send(ctx context.Context, name, email, body string) error {
	m := models.Message{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Message:   body,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.repo.Add(ctx, m)
	return err
}

// MarkRead is idempotent; marking an absent or already-read message is a no-op.
func (s *Service) MarkRead(ctx context.Context, id string) error {
	return s.repo.MarkRead(ctx, id)
}
