package gazetteer

import (
	"context"
	"slices"
	"sync"

	"jp-address-api/internal/models"

	"golang.org/x/sync/singleflight"
)

// Source is any gazetteer that can be cached.
type Source interface {
	ListCities(ctx context.Context, prefecture string) ([]models.City, error)
	ListTowns(ctx context.Context, prefecture, city string) ([]models.Town, error)
}

// Cache is a read-through cache in front of a Source. Concurrent misses for the same key share one
// fetch. Failures are not cached.
type Cache struct {
	source Source
	group  singleflight.Group

	mu     sync.RWMutex
	cities map[string][]models.City
	towns  map[string][]models.Town
}

// NewCache wraps source.
func NewCache(source Source) *Cache {
	return &Cache{
		source: source,
		cities: make(map[string][]models.City),
		towns:  make(map[string][]models.Town),
	}
}

func (c *Cache) ListCities(ctx context.Context, prefecture string) ([]models.City, error) {
	key := "c\x00" + prefecture
	c.mu.RLock()
	cities, ok := c.cities[key]
	c.mu.RUnlock()
	if ok {
		return slices.Clone(cities), nil
	}

	v, err := c.do(ctx, key, citiesOp(prefecture), func(fetchCtx context.Context) (any, error) {
		c.mu.RLock()
		cached, ok := c.cities[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}
		cities, err := c.source.ListCities(fetchCtx, prefecture)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cities[key] = cities
		c.mu.Unlock()
		return cities, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]models.City)), nil
}

func (c *Cache) ListTowns(ctx context.Context, prefecture, city string) ([]models.Town, error) {
	key := "t\x00" + prefecture + "\x00" + city
	c.mu.RLock()
	towns, ok := c.towns[key]
	c.mu.RUnlock()
	if ok {
		return slices.Clone(towns), nil
	}

	v, err := c.do(ctx, key, townsOp(prefecture, city), func(fetchCtx context.Context) (any, error) {
		c.mu.RLock()
		cached, ok := c.towns[key]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}
		towns, err := c.source.ListTowns(fetchCtx, prefecture, city)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.towns[key] = towns
		c.mu.Unlock()
		return towns, nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]models.Town)), nil
}

// do runs fetch once per key across concurrent callers. The shared fetch ignores the cancellation of
// whichever caller started it; each caller stops waiting when its own ctx is done.
func (c *Cache) do(ctx context.Context, key, op string, fetch func(context.Context) (any, error)) (any, error) {
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		return fetch(fetchCtx)
	})
	select {
	case res := <-ch:
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, &Error{Kind: ErrorFetch, Op: op, Err: ctx.Err()}
	}
}

// Len returns the number of cached city and town lists.
func (c *Cache) Len() (cities, towns int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cities), len(c.towns)
}
