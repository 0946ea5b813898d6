package giving

import (
	"context"

	"github.com/gracechapel/gracechapel/internal/models"
)

const Key = "donations"

// Repository defines persistence operations for donations. Donations are
// append-only; there is no delete and no update.
type Repository interface {
	List(ctx context.Context) ([]models.Donation, error)
	Add(ctx context.Context, d models.Donation) (models.Donation, error)
}
