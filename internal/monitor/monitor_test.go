package monitor

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/win7notify/internal/geometry"
)

func TestCache_QueriesOnce(t *testing.T) {
	calls := 0
	want := geometry.Rect{Right: 1920, Bottom: 1040}
	c := NewCache(func() (geometry.Rect, error) {
		calls++
		return want, nil
	})

	for range 3 {
		got, err := c.WorkArea()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 1, calls)
}

func TestCache_ConcurrentFirstUse(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	c := NewCache(func() (geometry.Rect, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return geometry.Rect{Right: 800, Bottom: 600}, nil
	})

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.WorkArea()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
}

func TestCache_ErrorNotCached(t *testing.T) {
	fail := true
	c := NewCache(func() (geometry.Rect, error) {
		if fail {
			return geometry.Rect{}, errors.New("boom")
		}
		return geometry.Rect{Right: 100, Bottom: 100}, nil
	})

	_, err := c.WorkArea()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	fail = false
	got, err := c.WorkArea()
	require.NoError(t, err)
	assert.Equal(t, int32(100), got.Right)
}

func TestCache_EmptyAreaRejected(t *testing.T) {
	c := NewCache(func() (geometry.Rect, error) { return geometry.Rect{}, nil })
	_, err := c.WorkArea()
	assert.Error(t, err)
}

func TestCache_NoSource(t *testing.T) {
	_, err := NewCache(nil).WorkArea()
	assert.Error(t, err)
}

func TestCache_Reset(t *testing.T) {
	calls := 0
	c := NewCache(func() (geometry.Rect, error) {
		calls++
		return geometry.Rect{Right: 10, Bottom: 10}, nil
	})
	_, _ = c.WorkArea()
	c.Reset()
	_, _ = c.WorkArea()
	assert.Equal(t, 2, calls)
}
