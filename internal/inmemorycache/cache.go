package inmemorycache

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"weatherwise/weather-service/internal/weather"
)

type Cache interface {
	Get(key string) (*weather.ResolvedLocation, bool, error)
	Set(key string, loc *weather.ResolvedLocation, ttl time.Duration) error
}

// InMemoryCache keeps resolved locations for a TTL. Values are stored by copy
// so callers cannot mutate cached entries.
type InMemoryCache struct {
	store *gocache.Cache
}

func NewInMemoryCacheProvider(defaultTTL, cleanupInterval time.Duration) *InMemoryCache {
	return &InMemoryCache{
		store: gocache.New(defaultTTL, cleanupInterval),
	}
}

func (m *InMemoryCache) Get(key string) (*weather.ResolvedLocation, bool, error) {
	value, found := m.store.Get(key)
	if !found {
		return nil, false, nil
	}

	loc, ok := value.(weather.ResolvedLocation)
	if !ok {
		m.store.Delete(key)
		return nil, false, fmt.Errorf("unexpected cache entry type %T for %q", value, key)
	}

	return &loc, true, nil
}

func (m *InMemoryCache) Set(key string, loc *weather.ResolvedLocation, ttl time.Duration) error {
	if loc == nil {
		return fmt.Errorf("refusing to cache nil location for %q", key)
	}

	m.store.Set(key, *loc, ttl)
	return nil
}

func (m *InMemoryCache) ItemCount() int {
	return m.store.ItemCount()
}
