package graphql

import (
	"context"
	"sync"

	"critterbook/internal/domain"
)

// requestCache memoizes animal reads within a single request, so a query
// selecting the same animal through several paths hits the store once. It
// is created per HTTP request and discarded with it; nothing survives into
// the next request, which is what makes the memoization safe.
type requestCache struct {
	mu      sync.Mutex
	animals map[int64]*domain.Animal
}

// WithRequestCache attaches a fresh per-request cache.
func WithRequestCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, requestCacheKey, &requestCache{
		animals: make(map[int64]*domain.Animal),
	})
}

// cachedAnimal serves the animal from the request cache, falling back to
// fetch on a miss. Without a cache in context it just fetches.
func cachedAnimal(ctx context.Context, id int64, fetch func() (*domain.Animal, error)) (*domain.Animal, error) {
	cache, ok := ctx.Value(requestCacheKey).(*requestCache)
	if !ok {
		return fetch()
	}

	cache.mu.Lock()
	animal, hit := cache.animals[id]
	cache.mu.Unlock()
	if hit {
		return animal, nil
	}

	animal, err := fetch()
	if err != nil {
		return nil, err
	}
	cache.mu.Lock()
	cache.animals[id] = animal
	cache.mu.Unlock()
	return animal, nil
}
