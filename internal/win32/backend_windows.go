//go:build windows

package win32

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/jmylchreest/win7notify/internal/display"
	"github.com/jmylchreest/win7notify/internal/geometry"
)

// ClassName is the registered popup window class.
const ClassName = "win7notify"

// Options configures a Backend.
type Options struct {
	// Background is the class brush colour, shown before the first paint.
	Background display.Color
	Logger     *slog.Logger
}

// Backend implements display.Backend on top of user32 and gdi32. Only one
// Backend may be attached to a dispatcher per process since the window
// procedure is process-wide.
type Backend struct {
	logger     *slog.Logger
	background display.Color
	dispatcher atomic.Pointer[dispatcherRef]

	instance  windows.Handle
	className *uint16
	brush     uintptr

	fontMu sync.Mutex
	fonts  map[display.Font]uintptr

	taskbarOnce sync.Once
	taskbar     *taskbarList
	taskbarErr  error
}

type dispatcherRef struct {
	d display.Dispatcher
}

var (
	current      atomic.Pointer[Backend]
	callbackOnce sync.Once
	callback     uintptr
)

// New creates a backend and makes it the target of the popup window
// procedure.
func New(opts Options) (*Backend, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	className, err := windows.UTF16PtrFromString(ClassName)
	if err != nil {
		return nil, err
	}
	instance, _, err := procGetModuleHandleW.Call(0)
	if instance == 0 {
		return nil, fmt.Errorf("failed to get module handle: %w", callErr(err))
	}

	b := &Backend{
		logger:     logger,
		background: opts.Background,
		instance:   windows.Handle(instance),
		className:  className,
		fonts:      make(map[display.Font]uintptr),
	}
	current.Store(b)
	return b, nil
}

// Attach implements display.Backend.
func (b *Backend) Attach(d display.Dispatcher) {
	b.dispatcher.Store(&dispatcherRef{d: d})
}

func (b *Backend) dispatch(ev display.Event) display.Result {
	ref := b.dispatcher.Load()
	if ref == nil {
		return display.Result{}
	}
	return ref.d.Dispatch(ev)
}

// RegisterClass registers the popup class. An already registered class is
// reused.
func (b *Backend) RegisterClass() error {
	callbackOnce.Do(func() {
		callback = windows.NewCallback(wndProc)
	})

	if b.brush == 0 {
		brush, _, _ := procCreateSolidBrush.Call(uintptr(b.background.COLORREF()))
		b.brush = brush
	}

	wc := wndClassEx{
		Style:      csHRedraw | csVRedraw,
		WndProc:    callback,
		Instance:   b.instance,
		Background: windows.Handle(b.brush),
		ClassName:  b.className,
	}
	wc.Size = uint32(unsafe.Sizeof(wc))

	atom, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if atom == 0 {
		if errors.Is(err, classExistsCode) {
			return nil
		}
		return callErr(err)
	}
	return nil
}

// WorkArea returns the work area of the monitor holding the desktop window,
// which is the primary monitor.
func (b *Backend) WorkArea() (geometry.Rect, error) {
	desktop, _, _ := procGetDesktopWindow.Call()
	mon, _, err := procMonitorFromWindow.Call(desktop, monitorPrimary)
	if mon == 0 {
		return geometry.Rect{}, callErr(err)
	}

	mi := monitorInfo{}
	mi.Size = uint32(unsafe.Sizeof(mi))
	ok, _, err := procGetMonitorInfoW.Call(mon, uintptr(unsafe.Pointer(&mi)))
	if ok == 0 {
		return geometry.Rect{}, callErr(err)
	}
	return geometry.Rect{Left: mi.Work.Left, Top: mi.Work.Top, Right: mi.Work.Right, Bottom: mi.Work.Bottom}, nil
}

// CreateWindow creates the popup hidden. The token travels as the creation
// parameter and comes back with WM_NCCREATE, before this call returns.
func (b *Backend) CreateWindow(token display.Token, bounds geometry.Rect) (display.Handle, error) {
	hwnd, _, err := procCreateWindowExW.Call(
		wsExTopmost|wsExNoActivate,
		uintptr(unsafe.Pointer(b.className)),
		uintptr(unsafe.Pointer(b.className)),
		wsPopup,
		uintptr(bounds.Left),
		uintptr(bounds.Top),
		uintptr(bounds.Width()),
		uintptr(bounds.Height()),
		0,
		0,
		uintptr(b.instance),
		uintptr(token),
	)
	if hwnd == 0 {
		return 0, callErr(err)
	}
	return display.Handle(hwnd), nil
}

// ownedByCaller reports whether the calling thread owns h.
func ownedByCaller(h display.Handle) bool {
	tid, _, _ := procGetWindowThreadPID.Call(uintptr(h), 0)
	return uint32(tid) == windows.GetCurrentThreadId()
}

func (b *Backend) Show(h display.Handle) {
	if ownedByCaller(h) {
		procShowWindow.Call(uintptr(h), swShowNoActive)
		return
	}
	procShowWindowAsync.Call(uintptr(h), swShowNoActive)
}

// Move repositions h without resizing or activating it. Off-thread moves are
// posted so a caller holding the registry lock never waits on the window
// thread.
func (b *Backend) Move(h display.Handle, pos geometry.Point) {
	flags := uintptr(swpNoSize | swpNoActivate)
	if !ownedByCaller(h) {
		flags |= swpAsync
	}
	procSetWindowPos.Call(uintptr(h), hwndTopmost, uintptr(pos.X), uintptr(pos.Y), 0, 0, flags)
}

func (b *Backend) Hide(h display.Handle) {
	if ownedByCaller(h) {
		procShowWindow.Call(uintptr(h), swHide)
		return
	}
	procShowWindowAsync.Call(uintptr(h), swHide)
}

// Destroy destroys h on its owning thread. From any other thread it posts
// WM_CLOSE and the window thread finishes the job.
func (b *Backend) Destroy(h display.Handle) {
	if ownedByCaller(h) {
		if ok, _, err := procDestroyWindow.Call(uintptr(h)); ok == 0 {
			b.logger.Debug("DestroyWindow failed", "handle", uintptr(h), "error", err)
		}
		return
	}
	procPostMessageW.Call(uintptr(h), wmClose, 0, 0)
}

func (b *Backend) Invalidate(h display.Handle, area geometry.Rect) {
	r := toRect(area)
	procInvalidateRect.Call(uintptr(h), uintptr(unsafe.Pointer(&r)), 0)
}

func (b *Backend) SetCursor(c display.Cursor) {
	id := uintptr(idcArrow)
	if c == display.CursorHand {
		id = idcHand
	}
	cur, _, _ := procLoadCursorW.Call(0, id)
	procSetCursor.Call(cur)
}

func (b *Backend) TrackLeave(h display.Handle) {
	tme := trackMouseEvent{Flags: tmeLeave, Hwnd: windows.HWND(h)}
	tme.Size = uint32(unsafe.Sizeof(tme))
	procTrackMouseEvent.Call(uintptr(unsafe.Pointer(&tme)))
}

// ExcludeFromTaskbar removes h from the taskbar and alt-tab list through
// ITaskbarList.
func (b *Backend) ExcludeFromTaskbar(h display.Handle) error {
	b.taskbarOnce.Do(func() {
		b.taskbar, b.taskbarErr = newTaskbarList()
	})
	if b.taskbarErr != nil {
		return b.taskbarErr
	}
	return b.taskbar.DeleteTab(uintptr(h))
}

// EnableShadow extends a one pixel DWM frame into the client area, which
// gives the borderless popup the system drop shadow. It fails when desktop
// composition is off.
func (b *Backend) EnableShadow(h display.Handle) error {
	if err := procDwmIsCompositionOn.Find(); err != nil {
		return err
	}

	var enabled int32
	if hr, _, _ := procDwmIsCompositionOn.Call(uintptr(unsafe.Pointer(&enabled))); hr != 0 {
		return fmt.Errorf("DwmIsCompositionEnabled: hresult 0x%08x", uint32(hr))
	}
	if enabled == 0 {
		return errors.New("desktop composition is disabled")
	}

	m := margins{Left: 1, Right: 1, Top: 1, Bottom: 1}
	if hr, _, _ := procDwmExtendFrame.Call(uintptr(h), uintptr(unsafe.Pointer(&m))); hr != 0 {
		return fmt.Errorf("DwmExtendFrameIntoClientArea: hresult 0x%08x", uint32(hr))
	}
	return nil
}

// Alert plays the system asterisk sound.
func (b *Backend) Alert() error {
	if ok, _, err := procMessageBeep.Call(mbIconAsterisk); ok == 0 {
		return callErr(err)
	}
	return nil
}

// Close releases the class brush, cached fonts and the taskbar object, and
// unregisters the class. Call it after every popup window is gone.
func (b *Backend) Close() {
	b.fontMu.Lock()
	for f, h := range b.fonts {
		procDeleteObject.Call(h)
		delete(b.fonts, f)
	}
	b.fontMu.Unlock()

	if b.taskbar != nil {
		b.taskbar.Release()
	}

	procUnregisterClassW.Call(uintptr(unsafe.Pointer(b.className)), uintptr(b.instance))
	if b.brush != 0 {
		procDeleteObject.Call(b.brush)
		b.brush = 0
	}
	current.CompareAndSwap(b, nil)
}

// font returns a cached GDI font for f.
func (b *Backend) font(f display.Font) uintptr {
	b.fontMu.Lock()
	defer b.fontMu.Unlock()

	if h, ok := b.fonts[f]; ok {
		return h
	}
	face, err := windows.UTF16PtrFromString(f.Family)
	if err != nil {
		return 0
	}
	h, _, _ := procCreateFontW.Call(
		uintptr(f.Size), 0, 0, 0,
		uintptr(f.Weight),
		0, 0, 0,
		defaultCharset,
		0, 0,
		cleartypeQual,
		0,
		uintptr(unsafe.Pointer(face)),
	)
	if h != 0 {
		b.fonts[f] = h
	}
	return h
}

func toRect(r geometry.Rect) rect {
	return rect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}
