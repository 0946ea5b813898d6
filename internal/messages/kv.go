package messages

import (
	"context"
	"sync"

	"github.com/gracechapel/gracechapel/internal/models"
	"github.com/gracechapel/gracechapel/internal/storage"
	"github.com/gracechapel/gracechapel/pkg/logger"
)

// KVRepository keeps the whole inbox as one JSON value under "messages".
// A never-written inbox reads as empty; there is no seed.
type KVRepository struct {
	mu sync.Mutex
	kv storage.KV
}

func NewKVRepository(kv storage.KV) *KVRepository {
	return &KVRepository{kv: kv}
}

func (r *KVRepository) load(ctx context.Context) ([]models.Message, error) {
	var list []models.Message
	ok, err := storage.GetJSON(ctx, r.kv, Key, &list)
	if err != nil {
		if _, present, kerr := r.kv.Get(ctx, Key); kerr == nil && present {
			// corrupt inbox fails closed to empty
			logger.Warnf("messages: stored collection is corrupt, resetting")
			if serr := storage.SetJSON(ctx, r.kv, Key, []models.Message{}); serr != nil {
				return nil, serr
			}
			return []models.Message{}, nil
		}
		return nil, err
	}
	if !ok {
		return []models.Message{}, nil
	}
	return list, nil
}

func (r *KVRepository) List(ctx context.Context) ([]models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *KVRepository) Add(ctx context.Context, m models.Message) (models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, err := r.load(ctx)
	if err != nil {
		return models.Message{}, err
	}
	updated := append([]models.Message{m}, list...)
	if err := storage.SetJSON(ctx, r.kv, Key, updated); err != nil {
		return models.Message{}, err
	}
	return m, nil
}

func (r *KVRepository) MarkRead(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].ID == id {
			list[i].Read = true
		}
	}
	// re-persist either way to keep the operation idempotent and simple
	return storage.SetJSON(ctx, r.kv, Key, list)
}
