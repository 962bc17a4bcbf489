package audio

import (
	"log/slog"
	"sync"

	"github.com/gen2brain/beeep"
)

// Settings selects the alert sound.
type Settings struct {
	Enabled bool
	// File is a WAV, OGG or MP3 file. Empty means the system alert.
	File string
	// Volume is 0 to 100.
	Volume int
}

// Alerter plays the alert for new notifications according to Settings.
type Alerter struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	player   *Player
	settings Settings

	play func(path string) error
	beep func() error
}

// NewAlerter creates an alerter for s.
func NewAlerter(s Settings, logger *slog.Logger) *Alerter {
	if logger == nil {
		logger = slog.Default()
	}
	player := NewPlayer(logger)
	a := &Alerter{
		logger: logger,
		player: player,
		play:   player.Play,
		beep: func() error {
			return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		},
	}
	a.Update(s)
	return a
}

// Update applies new settings, as after a config reload.
func (a *Alerter) Update(s Settings) {
	a.mu.Lock()
	changed := a.settings.File != s.File
	a.settings = s
	a.mu.Unlock()

	if s.Volume > 0 {
		a.player.SetVolume(float64(s.Volume) / 100.0)
	}
	if changed {
		a.player.Invalidate()
	}
	a.logger.Debug("alert settings updated", "enabled", s.Enabled, "file", s.File, "volume", s.Volume)
}

// Custom reports whether the alerter plays its own sound, in which case the
// notification itself should be shown silent.
func (a *Alerter) Custom() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.settings.Enabled && a.settings.File != ""
}

// Enabled reports whether any alert should sound.
func (a *Alerter) Enabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.settings.Enabled
}

// Play sounds the configured file. When it cannot be played a beep is
// sounded instead.
func (a *Alerter) Play() error {
	a.mu.RLock()
	s := a.settings
	a.mu.RUnlock()

	if !s.Enabled {
		return nil
	}
	if s.File != "" {
		err := a.play(s.File)
		if err == nil {
			return nil
		}
		a.logger.Warn("failed to play alert sound, falling back to beep", "path", s.File, "error", err)
	}
	return a.beep()
}

// Close releases the audio device.
func (a *Alerter) Close() {
	a.player.Close()
}
