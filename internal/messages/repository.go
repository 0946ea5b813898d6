package messages

import (
	"context"
	"errors"

	"github.com/gracechapel/gracechapel/internal/models"
)

const Key = "messages"

var ErrNotFound = errors.New("message not found")

// Repository defines persistence operations for contact messages. Messages
// are never deleted, only appended or flagged read.
type Repository interface {
	List(ctx context.Context) ([]models.Message, error)
	Add(ctx context.Context, m models.Message) (models.Message, error)
	// MarkRead flips read to true; absent ids are a no-op.
	MarkRead(ctx context.Context, id string) error
}
