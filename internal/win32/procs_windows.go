//go:build windows

package win32

import (
	"syscall"

	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")
	dwmapi   = windows.NewLazySystemDLL("dwmapi.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRegisterClassExW    = user32.NewProc("RegisterClassExW")
	procUnregisterClassW    = user32.NewProc("UnregisterClassW")
	procCreateWindowExW     = user32.NewProc("CreateWindowExW")
	procDefWindowProcW      = user32.NewProc("DefWindowProcW")
	procDestroyWindow       = user32.NewProc("DestroyWindow")
	procShowWindow          = user32.NewProc("ShowWindow")
	procShowWindowAsync     = user32.NewProc("ShowWindowAsync")
	procSetWindowPos        = user32.NewProc("SetWindowPos")
	procPostMessageW        = user32.NewProc("PostMessageW")
	procInvalidateRect      = user32.NewProc("InvalidateRect")
	procBeginPaint          = user32.NewProc("BeginPaint")
	procEndPaint            = user32.NewProc("EndPaint")
	procFillRect            = user32.NewProc("FillRect")
	procDrawTextW           = user32.NewProc("DrawTextW")
	procCreateIcon          = user32.NewProc("CreateIcon")
	procDrawIconEx          = user32.NewProc("DrawIconEx")
	procDestroyIcon         = user32.NewProc("DestroyIcon")
	procLoadCursorW         = user32.NewProc("LoadCursorW")
	procSetCursor           = user32.NewProc("SetCursor")
	procTrackMouseEvent     = user32.NewProc("TrackMouseEvent")
	procGetDesktopWindow    = user32.NewProc("GetDesktopWindow")
	procMonitorFromWindow   = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
	procMessageBeep         = user32.NewProc("MessageBeep")
	procGetWindowThreadPID  = user32.NewProc("GetWindowThreadProcessId")
	procCreateSolidBrush    = gdi32.NewProc("CreateSolidBrush")
	procCreateFontW         = gdi32.NewProc("CreateFontW")
	procSelectObject        = gdi32.NewProc("SelectObject")
	procDeleteObject        = gdi32.NewProc("DeleteObject")
	procSetTextColor        = gdi32.NewProc("SetTextColor")
	procSetBkMode           = gdi32.NewProc("SetBkMode")
	procDwmIsCompositionOn  = dwmapi.NewProc("DwmIsCompositionEnabled")
	procDwmExtendFrame      = dwmapi.NewProc("DwmExtendFrameIntoClientArea")
	procGetModuleHandleW    = kernel32.NewProc("GetModuleHandleW")
)

const (
	wsPopup         = 0x80000000
	wsExTopmost     = 0x00000008
	wsExNoActivate  = 0x08000000
	csHRedraw       = 0x0002
	csVRedraw       = 0x0001
	wmDestroy       = 0x0002
	wmClose         = 0x0010
	wmPaint         = 0x000F
	wmEraseBkgnd    = 0x0014
	wmMouseActivate = 0x0021
	wmNCCreate      = 0x0081
	wmNCCalcSize    = 0x0083
	wmMouseMove     = 0x0200
	wmLButtonDown   = 0x0201
	wmMouseLeave    = 0x02A3
	maNoActivate    = 3
	swHide          = 0
	swShowNoActive  = 4
	swpNoSize       = 0x0001
	swpNoActivate   = 0x0010
	swpAsync        = 0x4000
	hwndTopmost     = ^uintptr(0)
	idcArrow        = 32512
	idcHand         = 32649
	tmeLeave        = 0x00000002
	monitorPrimary  = 0x00000001
	mbIconAsterisk  = 0x00000040
	diNormal        = 0x0003
	bkTransparent   = 1
	dtCenter        = 0x00000001
	dtVCenter       = 0x00000004
	dtWordBreak     = 0x00000010
	dtSingleLine    = 0x00000020
	dtNoPrefix      = 0x00000800
	dtExtLeading    = 0x00000200
	dtEndEllipsis   = 0x00008000
	defaultCharset  = 1
	cleartypeQual   = 5
	classExistsCode = syscall.Errno(1410)
)

type rect struct {
	Left, Top, Right, Bottom int32
}

type wndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       windows.Handle
	Cursor     windows.Handle
	Background windows.Handle
	MenuName   *uint16
	ClassName  *uint16
	IconSm     windows.Handle
}

type createStruct struct {
	CreateParams uintptr
	Instance     windows.Handle
	Menu         windows.Handle
	Parent       windows.HWND
	Cy, Cx       int32
	Y, X         int32
	Style        int32
	Name         *uint16
	Class        *uint16
	ExStyle      uint32
}

type paintStruct struct {
	Hdc       windows.Handle
	Erase     int32
	Paint     rect
	Restore   int32
	IncUpdate int32
	Reserved  [32]byte
}

type monitorInfo struct {
	Size    uint32
	Monitor rect
	Work    rect
	Flags   uint32
}

type trackMouseEvent struct {
	Size      uint32
	Flags     uint32
	Hwnd      windows.HWND
	HoverTime uint32
}

type margins struct {
	Left, Right, Top, Bottom int32
}

// callErr turns the last-error value of a failed proc call into an error,
// falling back to EINVAL when the call did not set one.
func callErr(err error) error {
	if errno, ok := err.(syscall.Errno); ok && errno == 0 {
		return syscall.EINVAL
	}
	return err
}
