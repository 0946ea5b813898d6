package giving

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/gracechapel/gracechapel/internal/models"
)

// Service coordinates the gateway and the donation store. The ordering
// matters: the gateway confirms the charge first, and only then is the
// donation persisted, so a provider failure leaves no partial record.
type Service struct {
	repo    Repository
	gateway Gateway
}

func NewService(r Repository, g Gateway) *Service {
	return &Service{repo: r, gateway: g}
}

// List returns donations newest first (created_at descending).
func (s *Service) List(ctx context.Context) ([]models.Donation, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// Process runs a donation through the gateway and records it on confirmation.
func (s *Service) Process(ctx context.Context, email string, amount float64, purpose string) (models.Donation, error) {
	ref, err := s.gateway.Charge(ctx, email, amount, purpose)
	if err != nil {
		return models.Donation{}, fmt.Errorf("gateway charge: %w", err)
	}
	d := models.Donation{
		ID:        uuid.NewString(),
		UserEmail: email,
		Amount:    amount,
		Purpose:   purpose,
		Reference: ref,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Add(ctx, d)
}
