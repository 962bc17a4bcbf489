package display

import (
	"github.com/jmylchreest/win7notify/internal/geometry"
	"github.com/jmylchreest/win7notify/internal/icon"
)

// Handle identifies a native popup window.
type Handle uintptr

// Token ties a window under construction to its Popup before the native
// handle is known. The backend passes it through window creation and hands
// it back in the EventCreate event.
type Token uint64

// Cursor is a pointer shape.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorHand
)

// Font is a named font family with an explicit pixel height and weight.
type Font struct {
	Family string
	Size   int32
	Weight int32
}

// TextFormat selects text layout behaviour.
type TextFormat uint32

const (
	TextSingleLine TextFormat = 1 << iota
	TextWordBreak
	TextCenter
	TextEndEllipsis
)

// Canvas is the drawing surface handed to the paint engine for one paint
// pass.
type Canvas interface {
	FillRect(r geometry.Rect, c Color)
	DrawIcon(bm *icon.Bitmap, r geometry.Rect) error
	DrawText(text string, r geometry.Rect, font Font, c Color, format TextFormat)
}

// Backend is the platform window system.
//
// Methods that act on a window may be called from any goroutine; an
// implementation must marshal work to the thread owning the window where the
// platform requires it, and must not block on that thread.
type Backend interface {
	// Attach installs the dispatcher that receives window events.
	Attach(d Dispatcher)

	// RegisterClass registers the popup window class. It must succeed when
	// the class already exists.
	RegisterClass() error

	// WorkArea returns the primary display's usable rectangle.
	WorkArea() (geometry.Rect, error)

	// CreateWindow creates a borderless, topmost popup with the given
	// screen bounds. Implementations deliver EventCreate carrying token
	// before returning.
	CreateWindow(token Token, bounds geometry.Rect) (Handle, error)

	Show(h Handle)
	Move(h Handle, pos geometry.Point)
	Hide(h Handle)
	// Destroy destroys h, delivering EventDestroy once the window is gone.
	Destroy(h Handle)
	Invalidate(h Handle, area geometry.Rect)
	SetCursor(c Cursor)
	// TrackLeave requests an EventPointerLeave when the pointer exits h.
	TrackLeave(h Handle)

	ExcludeFromTaskbar(h Handle) error
	EnableShadow(h Handle) error
	Alert() error
}
