package sermons

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/gracechapel/gracechapel/internal/models"
	"github.com/gracechapel/gracechapel/internal/storage"
	"github.com/gracechapel/gracechapel/pkg/logger"
)

// KVRepository stores the whole collection as one JSON value under the
// "sermons" key. Mutations are read-modify-write; the mutex serializes
// writers within the process so concurrent admin requests can't drop each
// other's changes.
type KVRepository struct {
	mu sync.Mutex
	kv storage.KV
}

func NewKVRepository(kv storage.KV) *KVRepository {
	return &KVRepository{kv: kv}
}

// load returns the stored collection, seeding it when absent. A corrupt
// stored value fails closed onto the seed instead of erroring.
func (r *KVRepository) load(ctx context.Context) ([]models.Sermon, error) {
	var list []models.Sermon
	ok, err := storage.GetJSON(ctx, r.kv, Key, &list)
	if err != nil {
		if _, present, kerr := r.kv.Get(ctx, Key); kerr == nil && present {
			logger.Warnf("sermons: stored collection is corrupt, restoring seed")
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

func (r *KVRepository) List(ctx context.Context) ([]models.Sermon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx)
}

func (r *KVRepository) Get(ctx context.Context, id string) (*models.Sermon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			return &list[i], nil
		}
	}
	return nil, ErrNotFound
}

func (r *KVRepository) Add(ctx context.Context, s models.Sermon) (models.Sermon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, err := r.load(ctx)
	if err != nil {
		return models.Sermon{}, err
	}
	s.ID = uuid.NewString()
	updated := append([]models.Sermon{s}, list...)
	if err := storage.SetJSON(ctx, r.kv, Key, updated); err != nil {
		return models.Sermon{}, err
	}
	return s, nil
}

func (r *KVRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list, err := r.load(ctx)
	if err != nil {
		return err
	}
	filtered := list[:0:0]
	for _, s := range list {
		if s.ID != id {
			filtered = append(filtered, s)
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
