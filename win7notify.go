// Package win7notify shows Windows 10 style notification popups on Windows 7
// and later. Each popup is a borderless topmost window stacked in the
// bottom-right corner of the primary monitor's work area; it closes when its
// timeout expires or the user clicks its close button.
//
// The host must pump window messages on the thread that calls Show:
//
//	win7notify.New().
//		Summary("Build finished").
//		Body("All 42 tests passed").
//		Timeout(win7notify.Milliseconds(3000)).
//		Show()
package win7notify

import (
	"log/slog"
	"sync"

	"github.com/jmylchreest/win7notify/internal/display"
	"github.com/jmylchreest/win7notify/internal/icon"
)

// PlatformError is returned by Show when a platform call fails. Code holds
// the platform's last-error value.
type PlatformError = display.PlatformError

// CloseReason records why a notification closed.
type CloseReason = display.CloseReason

const (
	CloseReasonExpired   = display.CloseReasonExpired
	CloseReasonDismissed = display.CloseReasonDismissed
	CloseReasonClosed    = display.CloseReasonClosed
)

// ErrUnsupported is returned where no notification backend is available.
var ErrUnsupported = display.ErrUnsupported

// shower is the process-wide notification service.
type shower interface {
	Show(req display.Request) (string, error)
	CloseAll()
	Active() int
	SetLogger(logger *slog.Logger)
	SetCloseCallback(cb display.CloseCallback)
}

var (
	mu      sync.Mutex
	service shower
	logger  *slog.Logger
	onClose func(id string, reason CloseReason)
)

func defaultShower() (shower, error) {
	mu.Lock()
	defer mu.Unlock()

	if service != nil {
		return service, nil
	}
	s, err := newShower(logger)
	if err != nil {
		return nil, err
	}
	if onClose != nil {
		s.SetCloseCallback(onClose)
	}
	service = s
	return service, nil
}

// SetLogger sets the logger for notification diagnostics. The default is
// slog.Default().
func SetLogger(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
	if service != nil {
		service.SetLogger(l)
	}
}

// SetCloseCallback registers cb to run once for every notification that
// closes, with the ID returned by ShowWithID. It runs on the goroutine that
// closed the notification: the message loop thread for clicks, a timer
// goroutine for expiry.
func SetCloseCallback(cb func(id string, reason CloseReason)) {
	mu.Lock()
	defer mu.Unlock()
	onClose = cb
	if service != nil {
		service.SetCloseCallback(cb)
	}
}

// Active returns the number of notifications on screen.
func Active() int {
	mu.Lock()
	s := service
	mu.Unlock()
	if s == nil {
		return 0
	}
	return s.Active()
}

// CloseAll closes every notification on screen.
func CloseAll() {
	mu.Lock()
	s := service
	mu.Unlock()
	if s != nil {
		s.CloseAll()
	}
}

// Shutdown closes every notification and releases the platform resources
// held by the package. Show may be called again afterwards.
func Shutdown() {
	mu.Lock()
	s := service
	service = nil
	mu.Unlock()

	if s == nil {
		return
	}
	s.CloseAll()
	if c, ok := s.(interface{ release() }); ok {
		c.release()
	}
}

// ValidateIcon reports whether rgba holds exactly width*height RGBA pixels,
// returning *icon.DimensionError when it does not.
func ValidateIcon(rgba []byte, width, height uint32) error {
	return icon.Validate(rgba, width, height)
}
