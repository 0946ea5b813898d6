package users

import (
	"context"
	"testing"
	"time"

	"github.com/gracechapel/gracechapel/internal/models"
)

type fakeRepo struct {
	lastUpsert *models.User
	upsertErr  error
	stored     map[string]*models.User
}

func (f *fakeRepo) UpsertByEmail(ctx context.Context, u *models.User) (*models.User, error) {
	f.lastUpsert = u
	// simulate repository behavior: ensure timestamps are set
	now := time.Now().UTC()
	if f.lastUpsert.CreatedAt.IsZero() {
		f.lastUpsert.CreatedAt = now
	}
	f.lastUpsert.UpdatedAt = now
	ret := *f.lastUpsert
	return &ret, f.upsertErr
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.stored[email], nil
}

func TestLogin_RoleAssignment(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	u, err := svc.Login(ctx, "admin@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Role != models.RoleAdmin {
		t.Fatalf("expected admin role, got %q", u.Role)
	}

	u2, err := svc.Login(ctx, "person@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u2.Role != models.RoleUser {
		t.Fatalf("expected user role, got %q", u2.Role)
	}

	// the substring check is case-sensitive
	u3, err := svc.Login(ctx, "ADMIN@x.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u3.Role != models.RoleUser {
		t.Fatalf("expected user role for uppercase ADMIN, got %q", u3.Role)
	}
}

func TestLogin_EmptyEmailRejected(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.Login(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty email")
	}
}

func TestLogin_UpsertsWhenRepoConfigured(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	u, err := svc.Login(ctx, "admin@church.org")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil || u.ID == "" {
		t.Fatal("expected a user with an id")
	}
	if repo.lastUpsert == nil {
		t.Fatal("expected repository UpsertByEmail to be called")
	}
	if repo.lastUpsert.CreatedAt.IsZero() || repo.lastUpsert.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set: created=%v updated=%v", repo.lastUpsert.CreatedAt, repo.lastUpsert.UpdatedAt)
	}
	if repo.lastUpsert.Role != models.RoleAdmin {
		t.Fatalf("unexpected role persisted: %q", repo.lastUpsert.Role)
	}
}

func TestGetByEmail(t *testing.T) {
	ctx := context.Background()

	// demo mode: no store, no lookup
	u, err := NewService(nil).GetByEmail(ctx, "admin@church.org")
	if err != nil || u != nil {
		t.Fatalf("expected (nil, nil) without a repo, got (%v, %v)", u, err)
	}

	repo := &fakeRepo{stored: map[string]*models.User{
		"admin@church.org": {ID: "u-1", Email: "admin@church.org", Role: models.RoleAdmin},
	}}
	svc := NewService(repo)

	u, err = svc.GetByEmail(ctx, "admin@church.org")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil || u.ID != "u-1" {
		t.Fatalf("expected stored user, got %+v", u)
	}

	u, err = svc.GetByEmail(ctx, "nobody@church.org")
	if err != nil || u != nil {
		t.Fatalf("expected (nil, nil) for unknown email, got (%v, %v)", u, err)
	}
}
