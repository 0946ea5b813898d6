package sermons

import (
	"context"
	"errors"

	"github.com/gracechapel/gracechapel/internal/models"
)

// collection key in the KV store
const Key = "sermons"

var ErrNotFound = errors.New("sermon not found")

// Repository defines persistence operations for the sermons collection.
// Storage order is creation order with new sermons prepended.
type Repository interface {
	List(ctx context.Context) ([]models.Sermon, error)
	Get(ctx context.Context, id string) (*models.Sermon, error)
	// Add assigns the id and prepends the sermon to the collection.
	Add(ctx context.Context, s models.Sermon) (models.Sermon, error)
	// Delete removes by id; an absent id is a no-op, not an error.
	Delete(ctx context.Context, id string) error
	// EnsureSeed writes the seed list when the collection was never written.
	EnsureSeed(ctx context.Context) error
}

// Seed returns the fixed catalog the collection starts with the first time it
// is read. Matches the demo content the site launched with.
func Seed() []models.Sermon {
	return []models.Sermon{
		{
			ID:          "1",
			Title:       "Walking in Faith",
			Description: "Understanding how to trust God in difficult times.",
			Preacher:    "Pastor John Doe",
			Date:        "2023-10-15",
			Thumbnail:   "https://picsum.photos/seed/sermon1/800/600",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			ID:          "2",
			Title:       "The Power of Prayer",
			Description: "Learning to communicate effectively with the Father.",
			Preacher:    "Pastor Jane Smith",
			Date:        "2023-10-22",
			Thumbnail:   "https://picsum.photos/seed/sermon2/800/600",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			ID:          "3",
			Title:       "Grace Abounds",
			Description: "Exploring the limitless grace available to us.",
			Preacher:    "Pastor John Doe",
			Date:        "2023-10-29",
			Thumbnail:   "https://picsum.photos/seed/sermon3/800/600",
			VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
	}
}
