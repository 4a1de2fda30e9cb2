package credentials

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemoryRepository keeps credentials for the lifetime of the process only.
type MemoryRepository struct {
	c *cache.Cache
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{c: cache.New(cache.NoExpiration, 0)}
}

func (r *MemoryRepository) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := r.c.Get(key)
	if !ok {
		return "", false, nil
	}
	s, _ := v.(string)
	return s, true, nil
}

func (r *MemoryRepository) Set(_ context.Context, key, value string) error {
	r.c.Set(key, value, cache.NoExpiration)
	return nil
}

func (r *MemoryRepository) Remove(_ context.Context, key string) error {
	r.c.Delete(key)
	return nil
}
