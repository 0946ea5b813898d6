package events

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/gracechapel/gracechapel/internal/models"
	"github.com/gracechapel/gracechapel/internal/storage"
	"github.com/gracechapel/gracechapel/pkg/logger"
)

// KVRepository keeps the events collection as one JSON value under "events".
type KVRepository struct {
	mu sync.Mutex
	kv storage.KV
}

func NewKVRepository(kv storage.KV) *KVRepository {
	return &KVRepository{kv: kv}
}

func (r *KVRepository) load(ctx context.Context) ([]models.Event, error) {
	var list []models.Event
	ok, err := storage.GetJSON(ctx, r.kv, Key, &list)
	if err != nil {
		if _, present, kerr := r.kv.Get(ctx, Key); kerr == nil && present {
			logger.Warnf("events: stored collection is corrupt, restoring seed")
			seed := Seed()
			if serr := storage.SetJSON(ctx, r.kv, Key, seed); serr != nil {
				return nil, serr
			}
			return seed, nil
		}
		return nil, err
	}
	if !ok {
		seed := Seed()
		if err := storage.SetJSON(ctx, r.kv, Key, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	return list, nil
}

func (r *KVRepository) List(ctx context.Context) ([]models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *KVRepository) Add(ctx context.Context, e models.Event) (models.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, err := r.load(ctx)
	if err != nil {
		return models.Event{}, err
	}
	e.ID = uuid.NewString()
	updated := append([]models.Event{e}, list...)
	if err := storage.SetJSON(ctx, r.kv, Key, updated); err != nil {
		return models.Event{}, err
	}
	return e, nil
}

func (r *KVRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	filtered := list[:0:0]
	for _, e := range list {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	return storage.SetJSON(ctx, r.kv, Key, filtered)
}

func (r *KVRepository) EnsureSeed(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, err := r.load(ctx)
	return err
}
