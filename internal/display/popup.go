package display

import (
	"crypto/rand"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jmylchreest/win7notify/internal/icon"
)

// Content is what a popup displays. It is copied when the popup is created.
type Content struct {
	AppName string
	Summary string
	Body    string
	Icon    *icon.Image
	Silent  bool
}

// Request asks the manager to show one popup.
type Request struct {
	Content Content

	// Timeout is how long the popup stays up. Ignored when Persistent.
	Timeout    time.Duration
	Persistent bool
}

// State is a popup's position in its lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateCreated
	StateVisible
	StateClosing
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateCreated:
		return "created"
	case StateVisible:
		return "visible"
	case StateClosing:
		return "closing"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// CloseReason records why a popup left the screen.
type CloseReason int

const (
	CloseReasonExpired CloseReason = iota + 1
	CloseReasonDismissed
	CloseReasonClosed
)

func (r CloseReason) String() string {
	switch r {
	case CloseReasonExpired:
		return "expired"
	case CloseReasonDismissed:
		return "dismissed"
	case CloseReasonClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Popup is the state owned by one popup window for the window's lifetime.
// State is guarded by the manager's lock; hover is only touched from the
// window's own thread but is read by paint, so it is atomic.
type Popup struct {
	ID        string
	Token     Token
	Handle    Handle
	Content   Content
	Bitmap    *icon.Bitmap
	CreatedAt time.Time

	Timeout    time.Duration
	Persistent bool

	state      State
	hoverClose atomic.Bool
}

func newPopup(token Token, req Request) (*Popup, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return nil, err
	}

	content := req.Content
	content.Icon = req.Content.Icon.Clone()

	return &Popup{
		ID:         id.String(),
		Token:      token,
		Content:    content,
		Bitmap:     icon.Convert(content.Icon),
		CreatedAt:  time.Now(),
		Timeout:    req.Timeout,
		Persistent: req.Persistent,
		state:      StateUninitialized,
	}, nil
}

// HoverClose reports whether the pointer is over the close button.
func (p *Popup) HoverClose() bool {
	return p.hoverClose.Load()
}

// setHoverClose updates hover state and reports whether it changed.
func (p *Popup) setHoverClose(hover bool) bool {
	return p.hoverClose.Swap(hover) != hover
}
