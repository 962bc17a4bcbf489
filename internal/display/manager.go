package display

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/jmylchreest/win7notify/internal/geometry"
	"github.com/jmylchreest/win7notify/internal/monitor"
)

// CloseCallback is called once for each popup after it leaves the stack.
// It runs outside every manager lock, on whichever goroutine closed the
// popup.
type CloseCallback func(id string, reason CloseReason)

// Options configures a Manager. Backend is required.
type Options struct {
	Backend   Backend
	Scheduler Scheduler
	Layout    *Layout
	Theme     *Theme
	Logger    *slog.Logger
}

// Manager shows popups and keeps the stack of visible ones packed against
// the anchor corner.
type Manager struct {
	backend   Backend
	scheduler Scheduler
	painter   Painter
	logger    atomic.Pointer[slog.Logger]
	registry  *Registry
	monitors  *monitor.Cache

	classMu         sync.Mutex
	classRegistered bool

	// Window-owned state, keyed by native handle once created.
	mu        sync.Mutex
	popups    map[Handle]*Popup
	pending   map[Token]*Popup
	nextToken Token

	cbMu    sync.RWMutex
	onClose CloseCallback
}

// NewManager creates a manager and attaches it to the backend.
func NewManager(opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = TimerScheduler{}
	}
	layout := DefaultLayout()
	if opts.Layout != nil {
		layout = *opts.Layout
	}
	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	m := &Manager{
		backend:   opts.Backend,
		scheduler: scheduler,
		painter:   Painter{Layout: layout, Theme: theme},
		registry:  NewRegistry(),
		monitors:  monitor.NewCache(opts.Backend.WorkArea),
		popups:    make(map[Handle]*Popup),
		pending:   make(map[Token]*Popup),
	}
	m.logger.Store(logger)
	opts.Backend.Attach(m)
	return m
}

// SetCloseCallback sets the callback for popup close events.
func (m *Manager) SetCloseCallback(cb CloseCallback) {
	m.cbMu.Lock()
	defer m.cbMu.Unlock()
	m.onClose = cb
}

// SetLogger replaces the manager's logger. It may be called while popups
// are closing on other goroutines.
func (m *Manager) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	m.logger.Store(logger)
}

func (m *Manager) log() *slog.Logger {
	return m.logger.Load()
}

// Show creates a popup for req, pushes it onto the stack and schedules its
// expiry. It must be called on the thread that pumps window messages. The
// returned ID identifies the popup in logs and close callbacks.
func (m *Manager) Show(req Request) (string, error) {
	if err := m.ensureClass(); err != nil {
		return "", err
	}

	area, err := m.monitors.WorkArea()
	if err != nil {
		return "", platformError("query work area", err)
	}

	m.mu.Lock()
	m.nextToken++
	token := m.nextToken
	m.mu.Unlock()

	p, err := newPopup(token, req)
	if err != nil {
		return "", &PlatformError{Op: "allocate notification id", Cause: err}
	}

	m.mu.Lock()
	m.pending[token] = p
	m.mu.Unlock()

	h, err := m.backend.CreateWindow(token, m.painter.Layout.Bounds(area, 0))
	if err != nil {
		m.mu.Lock()
		delete(m.pending, token)
		m.mu.Unlock()
		return "", platformError("create notification window", err)
	}
	m.bind(token, h)

	if err := m.backend.ExcludeFromTaskbar(h); err != nil {
		m.log().Warn("failed to exclude notification from taskbar", "id", p.ID, "error", err)
	}
	if err := m.backend.EnableShadow(h); err != nil {
		m.log().Debug("drop shadow unavailable", "id", p.ID, "error", err)
	}

	m.registry.Add(h, m.placer(area))

	m.mu.Lock()
	p.state = StateVisible
	m.mu.Unlock()
	m.backend.Show(h)

	if !p.Content.Silent {
		if err := m.backend.Alert(); err != nil {
			m.log().Debug("failed to play alert sound", "id", p.ID, "error", err)
		}
	}

	m.schedule(p)

	m.log().Debug("showed notification",
		"id", p.ID,
		"handle", uintptr(h),
		"app", p.Content.AppName,
		"persistent", p.Persistent,
		"timeout", p.Timeout,
		"active", m.registry.Len(),
	)
	return p.ID, nil
}

// Close closes the popup h. It is safe to call from any goroutine and any
// number of times; it reports whether this call removed the popup.
func (m *Manager) Close(h Handle) bool {
	return m.close(h, nil, CloseReasonClosed)
}

// CloseAll closes every visible popup.
func (m *Manager) CloseAll() {
	for _, h := range m.registry.Handles() {
		m.close(h, nil, CloseReasonClosed)
	}
}

// Active returns the number of visible popups.
func (m *Manager) Active() int {
	return m.registry.Len()
}

// close is the single close path shared by expiry, clicks and explicit
// closes: leave the stack, re-pack the survivors, hide, destroy. When want
// is set, h is closed only while it still belongs to that popup; native
// handles are reused once their window is gone.
func (m *Manager) close(h Handle, want *Popup, reason CloseReason) bool {
	p := m.lookup(h)
	if want != nil && p != want {
		return false
	}
	if !m.unregister(h) {
		return false
	}

	if p != nil {
		m.mu.Lock()
		p.state = StateClosing
		m.mu.Unlock()
	}

	m.backend.Hide(h)
	m.backend.Destroy(h)

	if p != nil {
		m.notifyClosed(p, reason)
		m.log().Debug("closed notification", "id", p.ID, "reason", reason.String(), "active", m.registry.Len())
	}
	return true
}

// unregister removes h from the stack and re-packs the remaining popups.
func (m *Manager) unregister(h Handle) bool {
	var place PlaceFunc
	if area, err := m.monitors.WorkArea(); err == nil {
		place = m.placer(area)
	} else {
		m.log().Warn("cannot restack notifications", "error", err)
	}
	return m.registry.Remove(h, place)
}

func (m *Manager) placer(area geometry.Rect) PlaceFunc {
	return func(handles []Handle) {
		positions := m.painter.Layout.StackPositions(area, len(handles))
		for i, h := range handles {
			m.backend.Move(h, positions[i])
		}
	}
}

func (m *Manager) schedule(p *Popup) {
	if p.Persistent {
		return
	}
	h := p.Handle
	m.scheduler.Schedule(p.Timeout, func() {
		if !m.close(h, p, CloseReasonExpired) {
			m.log().Debug("expiry found notification already closed", "id", p.ID)
		}
	})
}

func (m *Manager) notifyClosed(p *Popup, reason CloseReason) {
	m.cbMu.RLock()
	cb := m.onClose
	m.cbMu.RUnlock()
	if cb != nil {
		cb(p.ID, reason)
	}
}

func (m *Manager) ensureClass() error {
	m.classMu.Lock()
	defer m.classMu.Unlock()

	if m.classRegistered {
		return nil
	}
	if err := m.backend.RegisterClass(); err != nil {
		return platformError("register window class", err)
	}
	m.classRegistered = true
	return nil
}

// bind attaches the pending popup for token to its native handle. Later
// calls for the same token are no-ops.
func (m *Manager) bind(token Token, h Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.pending[token]
	if !ok {
		return
	}
	delete(m.pending, token)
	p.Handle = h
	p.state = StateCreated
	m.popups[h] = p
}

func (m *Manager) lookup(h Handle) *Popup {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.popups[h]
}

// release drops the window-owned state for h. Only the first call for a
// handle returns the popup.
func (m *Manager) release(h Handle) *Popup {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.popups[h]
	if !ok {
		return nil
	}
	delete(m.popups, h)
	p.state = StateDestroyed
	return p
}
