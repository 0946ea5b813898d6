package sermons

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

	first, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, Seed(), first)

	// second read returns the persisted seed verbatim
	second, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestAdd_PrependsAndAssignsID(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	before, err := svc.List(ctx)
	require.NoError(t, err)

	created, err := svc.Add(ctx, models.Sermon{
		Title:    "New Beginnings",
		Preacher: "Pastor Jane Smith",
		Date:     "2024-01-07",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	after, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	require.Equal(t, created.ID, after[0].ID, "new sermon should be prepended")

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "New Beginnings", got.Title)
}

func TestDelete_RemovesExactlyOne(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	list, err := svc.List(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, list[1].ID))

	after, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(list)-1)
	for _, s := range after {
		require.NotEqual(t, list[1].ID, s.ID)
	}
}

func TestDelete_AbsentIDIsNoop(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	before, err := svc.List(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "does-not-exist"))

	after, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestLoad_CorruptValueFallsBackToSeed(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, Key, []byte("{corrupt")))

	svc := NewService(NewKVRepository(kv))
	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, Seed(), list)
}
