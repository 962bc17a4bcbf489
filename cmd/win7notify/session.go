package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"

	"github.com/jmylchreest/win7notify"
	"github.com/jmylchreest/win7notify/internal/audio"
	"github.com/jmylchreest/win7notify/internal/config"
	"github.com/jmylchreest/win7notify/internal/hostloop"
)

// session runs the message loop that notifications live on. It quits once
// input is finished and no notification is left on screen.
type session struct {
	loop    *hostloop.Loop
	alerter *audio.Alerter
	config  atomic.Pointer[config.Config]

	mu       sync.Mutex
	inFlight int
	eof      bool
}

func newSession(c *config.Config) *session {
	s := &session{
		loop:    hostloop.New(),
		alerter: audio.NewAlerter(soundSettings(c), logger),
	}
	s.config.Store(c)

	win7notify.SetCloseCallback(func(id string, reason win7notify.CloseReason) {
		logger.Debug("notification closed", "id", id, "reason", reason.String())
		s.loop.Post(s.checkDone)
	})
	return s
}

func soundSettings(c *config.Config) audio.Settings {
	return audio.Settings{
		Enabled: c.Sound.Enabled,
		File:    config.ExpandPath(c.Sound.File),
		Volume:  c.Sound.Volume,
	}
}

// run pumps messages until the session is done. An interrupt closes
// whatever is still on screen from the loop thread, which owns the windows.
func (s *session) run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	unwatch := context.AfterFunc(ctx, func() {
		s.loop.Post(func() {
			logger.Info("interrupted, closing notifications", "active", win7notify.Active())
			win7notify.CloseAll()
			s.loop.Quit()
		})
	})
	defer unwatch()

	defer func() {
		win7notify.Shutdown()
		s.alerter.Close()
	}()

	return s.loop.Run(context.Background())
}

// submit shows n on the loop thread. done, when set, receives the result
// there.
func (s *session) submit(n *win7notify.Notification, silent bool, done func(id string, err error)) {
	s.mu.Lock()
	s.inFlight++
	s.mu.Unlock()

	s.loop.Post(func() {
		id, err := s.show(n, silent)
		if err != nil {
			logger.Error("failed to show notification", "error", err)
		}
		if done != nil {
			done(id, err)
		}

		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()
		s.checkDone()
	})
}

// show displays n and sounds the configured alert. A custom sound file
// replaces the system alert, so the popup itself is shown silent.
func (s *session) show(n *win7notify.Notification, silent bool) (string, error) {
	custom := s.alerter.Custom()
	n.Silent(silent || custom || !s.alerter.Enabled())

	id, err := n.ShowWithID()
	if err != nil {
		return "", err
	}
	if custom && !silent {
		go func() {
			if err := s.alerter.Play(); err != nil {
				logger.Debug("alert failed", "error", err)
			}
		}()
	}
	return id, nil
}

// finish marks the end of input.
func (s *session) finish() {
	s.mu.Lock()
	s.eof = true
	s.mu.Unlock()
	s.loop.Post(s.checkDone)
}

// checkDone quits the loop once input is over and nothing is showing. It
// runs on the loop thread.
func (s *session) checkDone() {
	s.mu.Lock()
	done := s.eof && s.inFlight == 0
	s.mu.Unlock()

	if done && win7notify.Active() == 0 {
		s.loop.Quit()
	}
}

// reload applies a changed config file.
func (s *session) reload(c *config.Config) {
	s.config.Store(c)
	s.alerter.Update(soundSettings(c))
	applyLogLevel(c)
	logger.Info("configuration reloaded")
}
