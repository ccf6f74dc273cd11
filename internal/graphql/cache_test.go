package graphql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"critterbook/internal/domain"
)

func TestCachedAnimal_MemoizesWithinRequest(t *testing.T) {
	ctx := WithRequestCache(context.Background())

	calls := 0
	fetch := func() (*domain.Animal, error) {
		calls++
		return &domain.Animal{ID: 1, FirstName: "Rex", Type: "dog"}, nil
	}

	first, err := cachedAnimal(ctx, 1, fetch)
	require.NoError(t, err)
	second, err := cachedAnimal(ctx, 1, fetch)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Same(t, first, second)
}

func TestCachedAnimal_SeparateRequestsDoNotShare(t *testing.T) {
	calls := 0
	fetch := func() (*domain.Animal, error) {
		calls++
		return &domain.Animal{ID: 1, FirstName: "Rex", Type: "dog"}, nil
	}

	_, err := cachedAnimal(WithRequestCache(context.Background()), 1, fetch)
	require.NoError(t, err)
	_, err = cachedAnimal(WithRequestCache(context.Background()), 1, fetch)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestCachedAnimal_NoCacheInContext(t *testing.T) {
	calls := 0
	fetch := func() (*domain.Animal, error) {
		calls++
		return nil, nil
	}

	animal, err := cachedAnimal(context.Background(), 1, fetch)
	require.NoError(t, err)
	assert.Nil(t, animal)
	assert.Equal(t, 1, calls)
}
