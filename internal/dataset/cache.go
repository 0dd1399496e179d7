// Package dataset owns the lazily loaded, memoized warehouse snapshot that
// global-scope answers aggregate over. Self and functional requests never
// touch it; they go through the per-user collaborators instead.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/devakitechdata/nexus-analytics/internal/domain"
	"golang.org/x/sync/singleflight"
)

// ErrUnavailable reports that the warehouse snapshot could not be loaded.
// The condition is transient: the next request retries the load.
var ErrUnavailable = errors.New("dataset unavailable")

// Loader is the bulk-load collaborator. How the data arrives (SQL, CSV,
// HTTP) is outside the cache's concern.
type Loader interface {
	LoadDataset(ctx context.Context) (*domain.Dataset, error)
}

// Cache memoizes one Dataset per session. Loading is single-flight:
// concurrent callers while a load is in flight all observe the result of the
// one underlying load. A failed load leaves the cache empty so the next
// caller retries.
type Cache struct {
	loader Loader

	group singleflight.Group

	mu sync.RWMutex
	ds *domain.Dataset
}

// NewCache creates a Cache around the given loader.
func NewCache(loader Loader) *Cache {
	return &Cache{loader: loader}
}

// EnsureLoaded returns the memoized dataset, loading it on first use.
func (c *Cache) EnsureLoaded(ctx context.Context) (*domain.Dataset, error) {
	c.mu.RLock()
	ds := c.ds
	c.mu.RUnlock()
	if ds != nil {
		return ds, nil
	}

	v, err, _ := c.group.Do("dataset", func() (any, error) {
		// A concurrent caller may have won the race before this flight
		// started.
		c.mu.RLock()
		cached := c.ds
		c.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		loaded, err := c.loader.LoadDataset(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		c.mu.Lock()
		c.ds = loaded
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Dataset), nil
}

// Invalidate discards the memoized dataset. The next EnsureLoaded call
// triggers a fresh load.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.ds = nil
	c.mu.Unlock()
	c.group.Forget("dataset")
}

// Loaded reports whether a dataset is currently memoized.
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ds != nil
}
