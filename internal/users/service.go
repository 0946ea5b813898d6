package users

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/gracechapel/gracechapel/internal/models"
)

var ErrEmptyEmail = errors.New("email required")

// Service encapsulates login and user lookup. The repository is optional:
// without one (demo mode) users exist only for the lifetime of their session.
type Service struct {
	repo UserRepository
}

// NewService creates the user service. repo may be nil in demo mode.
func NewService(r UserRepository) *Service {
	return &Service{repo: r}
}

// Login resolves any non-empty email to a user and never rejects one.
//
// Role assignment is the demo placeholder the site shipped with: "admin" iff
// the email contains the substring "admin" (case-sensitive). This is NOT an
// authentication mechanism; deployments that need real admin access control
// must configure the OIDC identity provider instead.
func (s *Service) Login(ctx context.Context, email string) (*models.User, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}
	role := models.RoleUser
	if strings.Contains(email, "admin") {
		role = models.RoleAdmin
	}
	u := &models.User{
		ID:    uuid.NewString(),
		Email: email,
		Role:  role,
	}
	if s.repo == nil {
		return u, nil
	}
	return s.repo.UpsertByEmail(ctx, u)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.GetByEmail(ctx, email)
}
