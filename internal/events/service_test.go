package events

import (
	"context"
	"testing"

	"github.com/gracechapel/gracechapel/internal/models"
	"github.com/gracechapel/gracechapel/internal/storage"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(NewKVRepository(storage.NewMemoryKV()))
}

func TestList_SeedsOnFirstRead(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Community Picnic", list[0].Title)
	require.Equal(t, "Christmas Eve Service", list[1].Title)
}

func TestAddAndSortByEventDate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Add(ctx, models.Event{
		Title:       "Picnic",
		EventDate:   "2024-06-01",
		Time:        "10:00 AM",
		Location:    "Park",
		Description: "Fun",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	// 2024-06-01 sorts after both seed events (2023-11-20, 2023-12-24)
	require.Equal(t, created.ID, list[2].ID)
	require.Equal(t, "2023-11-20", list[0].EventDate)
	require.Equal(t, "2023-12-24", list[1].EventDate)
}

func TestDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	before, err := svc.List(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, before[0].ID))
	after, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)-1)

	// absent id is a no-op
	require.NoError(t, svc.Delete(ctx, "missing"))
	again, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, after, again)
}
