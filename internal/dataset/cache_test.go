package dataset

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingLoader counts load calls and can hold callers until released.
type blockingLoader struct {
	calls   atomic.Int64
	release chan struct{}
	err     error
}

func (l *blockingLoader) LoadDataset(ctx context.Context) (*domain.Dataset, error) {
	l.calls.Add(1)
	if l.release != nil {
		<-l.release
	}
	if l.err != nil {
		return nil, l.err
	}
	return &domain.Dataset{Students: []domain.Student{{StudentKey: 1}}}, nil
}

func TestEnsureLoaded_MemoizesAcrossCalls(t *testing.T) {
	loader := &blockingLoader{}
	cache := NewCache(loader)
	ctx := context.Background()

	first, err := cache.EnsureLoaded(ctx)
	require.NoError(t, err)
	second, err := cache.EnsureLoaded(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second, "all callers observe the same instance")
	assert.Equal(t, int64(1), loader.calls.Load())
	assert.True(t, cache.Loaded())
}

func TestEnsureLoaded_ConcurrentCallersSingleFlight(t *testing.T) {
	loader := &blockingLoader{release: make(chan struct{})}
	cache := NewCache(loader)
	ctx := context.Background()

	const callers = 8
	results := make([]*domain.Dataset, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ds, err := cache.EnsureLoaded(ctx)
			require.NoError(t, err)
			results[i] = ds
		}(i)
	}

	close(loader.release)
	wg.Wait()

	assert.Equal(t, int64(1), loader.calls.Load(), "concurrent callers must share one load")
	for i := 1; i < callers; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestEnsureLoaded_FailureLeavesCacheEmptyAndRetries(t *testing.T) {
	loader := &blockingLoader{err: errors.New("warehouse offline")}
	cache := NewCache(loader)
	ctx := context.Background()

	_, err := cache.EnsureLoaded(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, cache.Loaded(), "failed load leaves the cache empty")

	// Recovery: the loader comes back and the next call retries.
	loader.err = nil
	ds, err := cache.EnsureLoaded(ctx)
	require.NoError(t, err)
	assert.NotNil(t, ds)
	assert.Equal(t, int64(2), loader.calls.Load())
}

func TestInvalidate_TriggersFreshLoad(t *testing.T) {
	loader := &blockingLoader{}
	cache := NewCache(loader)
	ctx := context.Background()

	_, err := cache.EnsureLoaded(ctx)
	require.NoError(t, err)

	cache.Invalidate()
	assert.False(t, cache.Loaded())

	_, err = cache.EnsureLoaded(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), loader.calls.Load())
}
