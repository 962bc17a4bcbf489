//go:build windows

package win32

import (
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/jmylchreest/win7notify/internal/display"
	"github.com/jmylchreest/win7notify/internal/geometry"
	"github.com/jmylchreest/win7notify/internal/icon"
)

// canvas draws onto the device context of one WM_PAINT pass.
type canvas struct {
	backend *Backend
	hdc     uintptr
}

func (c *canvas) FillRect(r geometry.Rect, col display.Color) {
	brush, _, _ := procCreateSolidBrush.Call(uintptr(col.COLORREF()))
	if brush == 0 {
		return
	}
	defer procDeleteObject.Call(brush)

	wr := toRect(r)
	procFillRect.Call(c.hdc, uintptr(unsafe.Pointer(&wr)), brush)
}

// DrawIcon builds a transient HICON from the converted planes and draws it
// scaled into r.
func (c *canvas) DrawIcon(bm *icon.Bitmap, r geometry.Rect) error {
	if bm == nil || len(bm.Color) == 0 || len(bm.Mask) == 0 {
		return nil
	}

	hicon, _, err := procCreateIcon.Call(
		uintptr(c.backend.instance),
		uintptr(bm.Width),
		uintptr(bm.Height),
		1,
		32,
		uintptr(unsafe.Pointer(&bm.Mask[0])),
		uintptr(unsafe.Pointer(&bm.Color[0])),
	)
	if hicon == 0 {
		return fmt.Errorf("CreateIcon: %w", callErr(err))
	}
	defer procDestroyIcon.Call(hicon)

	ok, _, err := procDrawIconEx.Call(
		c.hdc,
		uintptr(r.Left),
		uintptr(r.Top),
		hicon,
		uintptr(r.Width()),
		uintptr(r.Height()),
		0, 0,
		diNormal,
	)
	if ok == 0 {
		return fmt.Errorf("DrawIconEx: %w", callErr(err))
	}
	return nil
}

func (c *canvas) DrawText(text string, r geometry.Rect, font display.Font, col display.Color, format display.TextFormat) {
	if text == "" {
		return
	}
	buf, err := windows.UTF16FromString(text)
	if err != nil {
		buf, _ = windows.UTF16FromString(strings.ReplaceAll(text, "\x00", ""))
	}

	if hfont := c.backend.font(font); hfont != 0 {
		old, _, _ := procSelectObject.Call(c.hdc, hfont)
		defer procSelectObject.Call(c.hdc, old)
	}
	procSetTextColor.Call(c.hdc, uintptr(col.COLORREF()))
	procSetBkMode.Call(c.hdc, bkTransparent)

	wr := toRect(r)
	procDrawTextW.Call(
		c.hdc,
		uintptr(unsafe.Pointer(&buf[0])),
		^uintptr(0),
		uintptr(unsafe.Pointer(&wr)),
		drawTextFlags(format),
	)
}

func drawTextFlags(format display.TextFormat) uintptr {
	flags := uintptr(dtNoPrefix)
	if format&display.TextSingleLine != 0 {
		flags |= dtSingleLine | dtVCenter
	}
	if format&display.TextWordBreak != 0 {
		flags |= dtWordBreak | dtExtLeading
	}
	if format&display.TextCenter != 0 {
		flags |= dtCenter
	}
	if format&display.TextEndEllipsis != 0 {
		flags |= dtEndEllipsis
	}
	return flags
}
