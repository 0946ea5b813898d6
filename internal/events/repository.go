package events

import (
	"context"
	"errors"

	"github.com/gracechapel/gracechapel/internal/models"
)

const Key = "events"

var ErrNotFound = errors.New("event not found")

// Repository defines persistence operations for the events collection.
type Repository interface {
	List(ctx context.Context) ([]models.Event, error)
	Add(ctx context.Context, e models.Event) (models.Event, error)
	Delete(ctx context.Context, id string) error
	EnsureSeed(ctx context.Context) error
}

// Seed is the initial calendar written on first read.
func Seed() []models.Event {
	return []models.Event{
		{
			ID:          "1",
			Title:       "Community Picnic",
			Description: "Join us for a day of fun, food, and fellowship at the park.",
			Location:    "Central City Park",
			EventDate:   "2023-11-20",
			Time:        "12:00 PM",
		},
		{
			ID:          "2",
			Title:       "Christmas Eve Service",
			Description: "A candlelight service celebrating the birth of Christ.",
			Location:    "Main Sanctuary",
			EventDate:   "2023-12-24",
			Time:        "06:00 PM",
		},
	}
}
