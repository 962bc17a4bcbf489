package display

import (
	"github.com/jmylchreest/win7notify/internal/geometry"
)

// EventKind classifies a window message after the backend has decoded it.
type EventKind int

const (
	EventOther EventKind = iota
	EventCreate
	EventPaint
	EventPointerMove
	EventPointerLeave
	EventPointerDown
	EventClose
	EventDestroy
)

func (k EventKind) String() string {
	switch k {
	case EventCreate:
		return "create"
	case EventPaint:
		return "paint"
	case EventPointerMove:
		return "pointer-move"
	case EventPointerLeave:
		return "pointer-leave"
	case EventPointerDown:
		return "pointer-down"
	case EventClose:
		return "close"
	case EventDestroy:
		return "destroy"
	default:
		return "other"
	}
}

// Event is a decoded window message.
type Event struct {
	Kind   EventKind
	Handle Handle
	// Token is set for EventCreate.
	Token Token
	// Point is in client coordinates for pointer events.
	Point geometry.Point
	// Canvas is set for EventPaint.
	Canvas Canvas
}

// Result tells the backend whether the event was consumed. Unhandled events
// fall through to the platform's default processing.
type Result struct {
	Handled bool
}

// Dispatcher receives window events from a backend.
type Dispatcher interface {
	Dispatch(ev Event) Result
}

type handler func(m *Manager, ev Event) Result

// transitions maps each event kind to the action it triggers. Kinds not in
// the table are left to the platform.
var transitions = map[EventKind]handler{
	EventCreate:       (*Manager).onCreate,
	EventPaint:        (*Manager).onPaint,
	EventPointerMove:  (*Manager).onPointerMove,
	EventPointerLeave: (*Manager).onPointerLeave,
	EventPointerDown:  (*Manager).onPointerDown,
	EventClose:        (*Manager).onCloseRequest,
	EventDestroy:      (*Manager).onDestroy,
}

// Dispatch implements Dispatcher.
func (m *Manager) Dispatch(ev Event) Result {
	h, ok := transitions[ev.Kind]
	if !ok {
		return Result{}
	}
	return h(m, ev)
}

func (m *Manager) onCreate(ev Event) Result {
	m.bind(ev.Token, ev.Handle)
	// creation continues through default processing
	return Result{}
}

func (m *Manager) onPaint(ev Event) Result {
	p := m.lookup(ev.Handle)
	if p == nil || ev.Canvas == nil {
		return Result{}
	}
	if err := m.painter.Paint(ev.Canvas, p); err != nil {
		m.log().Debug("skipped notification icon", "id", p.ID, "error", err)
	}
	return Result{Handled: true}
}

func (m *Manager) onPointerMove(ev Event) Result {
	p := m.lookup(ev.Handle)
	if p == nil {
		return Result{}
	}

	hover := m.painter.Layout.HitClose(ev.Point)
	if p.setHoverClose(hover) {
		m.backend.Invalidate(ev.Handle, m.painter.Layout.CloseButton())
		if hover {
			m.backend.TrackLeave(ev.Handle)
		}
	}

	if hover {
		m.backend.SetCursor(CursorHand)
	} else {
		m.backend.SetCursor(CursorArrow)
	}
	return Result{Handled: true}
}

func (m *Manager) onPointerLeave(ev Event) Result {
	p := m.lookup(ev.Handle)
	if p == nil {
		return Result{}
	}
	if p.setHoverClose(false) {
		m.backend.Invalidate(ev.Handle, m.painter.Layout.CloseButton())
	}
	return Result{Handled: true}
}

func (m *Manager) onPointerDown(ev Event) Result {
	if m.lookup(ev.Handle) == nil {
		return Result{}
	}
	if m.painter.Layout.HitClose(ev.Point) {
		m.close(ev.Handle, nil, CloseReasonDismissed)
	}
	return Result{Handled: true}
}

func (m *Manager) onCloseRequest(ev Event) Result {
	// A close posted from another thread arrives after the registry entry is
	// already gone; finish the teardown here on the owning thread.
	if !m.close(ev.Handle, nil, CloseReasonClosed) {
		m.backend.Destroy(ev.Handle)
	}
	return Result{Handled: true}
}

func (m *Manager) onDestroy(ev Event) Result {
	p := m.release(ev.Handle)
	if p == nil {
		return Result{}
	}

	// destroyed behind our back: drop it from the stack too
	if m.unregister(ev.Handle) {
		m.notifyClosed(p, CloseReasonClosed)
	}

	m.log().Debug("released notification window", "id", p.ID, "handle", uintptr(ev.Handle))
	return Result{}
}
