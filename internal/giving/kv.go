package giving

import (
	"context"
	"sync"

	"github.com/gracechapel/gracechapel/internal/models"
	"github.com/gracechapel/gracechapel/internal/storage"
	"github.com/gracechapel/gracechapel/pkg/logger"
)

// KVRepository keeps all donations as one JSON value under "donations".
type KVRepository struct {
	mu sync.Mutex
	kv storage.KV
}

func NewKVRepository(kv storage.KV) *KVRepository {
	return &KVRepository{kv: kv}
}

func (r *KVRepository) load(ctx context.Context) ([]models.Donation, error) {
	var list []models.Donation
	ok, err := storage.GetJSON(ctx, r.kv, Key, &list)
	if err != nil {
		if _, present, kerr := r.kv.Get(ctx, Key); kerr == nil && present {
			logger.Warnf("donations: stored collection is corrupt, resetting")
			if serr := storage.SetJSON(ctx, r.kv, Key, []models.Donation{}); serr != nil {
				return nil, serr
			}
			return []models.Donation{}, nil
		}
		return nil, err
	}
	if !ok {
		return []models.Donation{}, nil
	}
	return list, nil
}

func (r *KVRepository) List(ctx context.Context) ([]models.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *KVRepository) Add(ctx context.Context, d models.Donation) (models.Donation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, err := r.load(ctx)
	if err != nil {
		return models.Donation{}, err
	}
	updated := append([]models.Donation{d}, list...)
	if err := storage.SetJSON(ctx, r.kv, Key, updated); err != nil {
		return models.Donation{}, err
	}
	return d, nil
}
