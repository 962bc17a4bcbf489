// Package monitor caches the usable work area of the primary display.
package monitor

import (
	"fmt"
	"sync"

	"github.com/jmylchreest/win7notify/internal/geometry"
)

// WorkAreaFunc queries the primary monitor's work area from the platform.
type WorkAreaFunc func() (geometry.Rect, error)

// Cache holds a lazily computed work area. The first successful query is
// kept for the lifetime of the cache; display reconfiguration is not
// tracked.
type Cache struct {
	mu    sync.Mutex
	query WorkAreaFunc
	area  geometry.Rect
	valid bool
}

// NewCache creates a cache backed by query.
func NewCache(query WorkAreaFunc) *Cache {
	return &Cache{query: query}
}

// WorkArea returns the cached work area, querying the platform on first use.
// A failed query is not cached, so the next call retries.
func (c *Cache) WorkArea() (geometry.Rect, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.valid {
		return c.area, nil
	}
	if c.query == nil {
		return geometry.Rect{}, fmt.Errorf("no work area source configured")
	}

	area, err := c.query()
	if err != nil {
		return geometry.Rect{}, fmt.Errorf("failed to query work area: %w", err)
	}
	if area.Empty() {
		return geometry.Rect{}, fmt.Errorf("work area is empty: %+v", area)
	}

	c.area = area
	c.valid = true
	return area, nil
}

// Reset drops the cached value. Intended for tests.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.valid = false
	c.area = geometry.Rect{}
}
