//go:build windows

package win32

import (
	"unsafe"

	"github.com/jmylchreest/win7notify/internal/display"
	"github.com/jmylchreest/win7notify/internal/geometry"
)

// messageKinds maps the window messages the popup handles to display events.
var messageKinds = map[uint32]display.EventKind{
	wmMouseMove:   display.EventPointerMove,
	wmMouseLeave:  display.EventPointerLeave,
	wmLButtonDown: display.EventPointerDown,
	wmClose:       display.EventClose,
	wmDestroy:     display.EventDestroy,
}

func wndProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	b := current.Load()
	if b == nil {
		return defWindowProc(hwnd, msg, wParam, lParam)
	}
	h := display.Handle(hwnd)

	switch uint32(msg) {
	case wmNCCreate:
		cs := (*createStruct)(unsafe.Pointer(lParam))
		b.dispatch(display.Event{Kind: display.EventCreate, Handle: h, Token: display.Token(cs.CreateParams)})
		return defWindowProc(hwnd, msg, wParam, lParam)

	case wmNCCalcSize:
		// no non-client area: the client fills the whole window
		return 0

	case wmEraseBkgnd:
		return 1

	case wmMouseActivate:
		return maNoActivate

	case wmPaint:
		if b.paint(h) {
			return 0
		}
		return defWindowProc(hwnd, msg, wParam, lParam)
	}

	kind, ok := messageKinds[uint32(msg)]
	if !ok {
		return defWindowProc(hwnd, msg, wParam, lParam)
	}
	ev := display.Event{Kind: kind, Handle: h}
	if kind == display.EventPointerMove || kind == display.EventPointerDown {
		ev.Point = pointFromLParam(lParam)
	}
	if b.dispatch(ev).Handled {
		return 0
	}
	return defWindowProc(hwnd, msg, wParam, lParam)
}

func (b *Backend) paint(h display.Handle) bool {
	var ps paintStruct
	hdc, _, _ := procBeginPaint.Call(uintptr(h), uintptr(unsafe.Pointer(&ps)))
	if hdc == 0 {
		return false
	}
	defer procEndPaint.Call(uintptr(h), uintptr(unsafe.Pointer(&ps)))

	c := &canvas{backend: b, hdc: hdc}
	b.dispatch(display.Event{Kind: display.EventPaint, Handle: h, Canvas: c})
	return true
}

func defWindowProc(hwnd, msg, wParam, lParam uintptr) uintptr {
	r, _, _ := procDefWindowProcW.Call(hwnd, msg, wParam, lParam)
	return r
}

// pointFromLParam unpacks signed client coordinates from a mouse message.
func pointFromLParam(lParam uintptr) geometry.Point {
	return geometry.Point{
		X: int32(int16(lParam & 0xffff)),
		Y: int32(int16((lParam >> 16) & 0xffff)),
	}
}
