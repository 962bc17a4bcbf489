// Package hostloop runs the message loop that notification windows need.
// Work from other goroutines is marshalled onto the loop thread with Post.
package hostloop

import (
	"sync"
)

// queue holds functions posted before or during Run.
type queue struct {
	mu      sync.Mutex
	pending []func()
}

func (q *queue) push(fn func()) {
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

func (q *queue) drain() {
	q.mu.Lock()
	fns := q.pending
	q.pending = nil
	q.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
