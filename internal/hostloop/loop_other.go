//go:build !windows

package hostloop

import (
	"context"
	"errors"
	"sync"
)

// Loop runs posted functions on a single goroutine.
type Loop struct {
	queue

	mu      sync.Mutex
	running bool
	quit    bool
	wake    chan struct{}
	done    chan struct{}
}

// New returns a loop that is not yet running.
func New() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Run executes posted functions until Quit is called or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return errors.New("loop is already running")
	}
	l.running = true
	quit := l.quit
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.running = false
		l.quit = false
		l.done = make(chan struct{})
		l.mu.Unlock()
	}()

	if quit {
		return nil
	}

	l.mu.Lock()
	done := l.done
	l.mu.Unlock()

	for {
		l.drain()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-done:
			return nil
		case <-l.wake:
		}
	}
}

// Post runs fn on the loop goroutine.
func (l *Loop) Post(fn func()) {
	l.push(fn)
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Quit stops Run. Calling it before Run makes the next Run return at once.
func (l *Loop) Quit() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.quit {
		return
	}
	l.quit = true
	if l.running {
		close(l.done)
	}
}
