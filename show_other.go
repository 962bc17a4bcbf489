//go:build !windows

package win7notify

import (
	"log/slog"
	"sync"

	"github.com/gen2brain/beeep"
	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/win7notify/internal/display"
)

// notifyFunc delivers a notification through the desktop's own service.
type notifyFunc func(title, message string) error

// desktopShower hands notifications to the desktop's notification service.
// No popup window is created, so nothing is ever active and no close
// callback fires.
type desktopShower struct {
	notify notifyFunc

	mu     sync.Mutex
	logger *slog.Logger
}

func newShower(logger *slog.Logger) (shower, error) {
	return newDesktopShower(func(title, message string) error {
		return beeep.Notify(title, message, "")
	}, logger), nil
}

func newDesktopShower(notify notifyFunc, logger *slog.Logger) *desktopShower {
	if logger == nil {
		logger = slog.Default()
	}
	return &desktopShower{notify: notify, logger: logger}
}

func (s *desktopShower) Show(req display.Request) (string, error) {
	id := ulid.Make().String()

	title := req.Content.Summary
	if req.Content.AppName != "" {
		title = req.Content.AppName + ": " + title
	}
	if err := s.notify(title, req.Content.Body); err != nil {
		return "", &PlatformError{Op: "send desktop notification", Cause: err}
	}

	s.mu.Lock()
	logger := s.logger
	s.mu.Unlock()
	logger.Debug("sent desktop notification", "id", id, "app", req.Content.AppName)
	return id, nil
}

func (s *desktopShower) CloseAll() {}

func (s *desktopShower) Active() int { return 0 }

func (s *desktopShower) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	s.mu.Lock()
	s.logger = logger
	s.mu.Unlock()
}

func (s *desktopShower) SetCloseCallback(display.CloseCallback) {}
