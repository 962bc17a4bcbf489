package display

import (
	"slices"
	"sync"
)

// PlaceFunc repositions the stack. It receives the handles oldest first and
// runs under the registry lock; it must not keep the slice.
type PlaceFunc func(handles []Handle)

// Registry is the ordered set of visible popups, oldest first. Every
// mutation and the repositioning that follows it happen under one lock, so
// concurrent closers never observe or produce a torn stack.
type Registry struct {
	mu      sync.Mutex
	handles []Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends h as the newest popup and restacks every entry. Adding a
// handle that is already present is a no-op.
func (r *Registry) Add(h Handle, place PlaceFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slices.Contains(r.handles, h) {
		return
	}
	r.handles = append(r.handles, h)
	r.restackLocked(place)
}

// Remove deletes h and restacks the survivors. It reports whether h was
// present; when it was not, nothing is repositioned.
func (r *Registry) Remove(h Handle, place PlaceFunc) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.Index(r.handles, h)
	if i < 0 {
		return false
	}
	r.handles = slices.Delete(r.handles, i, i+1)
	r.restackLocked(place)
	return true
}

// restackLocked hands the current order to place. Caller must hold the lock.
func (r *Registry) restackLocked(place PlaceFunc) {
	if place != nil {
		place(r.handles)
	}
}

// Handles returns a snapshot of the registered handles, oldest first.
func (r *Registry) Handles() []Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.handles)
}

// Len returns the number of registered popups.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}

// Reset empties the registry without repositioning anything.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handles = nil
}
