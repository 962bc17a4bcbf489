//go:build windows

package win7notify

import (
	"log/slog"

	"github.com/jmylchreest/win7notify/internal/display"
	"github.com/jmylchreest/win7notify/internal/win32"
)

// windowShower is the popup manager together with the backend it owns.
type windowShower struct {
	*display.Manager
	backend *win32.Backend
}

func newShower(logger *slog.Logger) (shower, error) {
	theme := display.DefaultTheme()
	backend, err := win32.New(win32.Options{Background: theme.Background, Logger: logger})
	if err != nil {
		return nil, &PlatformError{Op: "initialise window backend", Cause: err}
	}
	m := display.NewManager(display.Options{
		Backend: backend,
		Theme:   &theme,
		Logger:  logger,
	})
	return &windowShower{Manager: m, backend: backend}, nil
}

func (s *windowShower) release() {
	s.backend.Close()
}
