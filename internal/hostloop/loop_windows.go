//go:build windows

package hostloop

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procGetMessageW        = user32.NewProc("GetMessageW")
	procPeekMessageW       = user32.NewProc("PeekMessageW")
	procTranslateMessage   = user32.NewProc("TranslateMessage")
	procDispatchMessageW   = user32.NewProc("DispatchMessageW")
	procPostThreadMessageW = user32.NewProc("PostThreadMessageW")
)

const (
	wmQuit     = 0x0012
	wmApp      = 0x8000
	wmWake     = wmApp + 1
	pmNoRemove = 0x0000
)

type msg struct {
	Hwnd    uintptr
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	X, Y    int32
}

// Loop is a Win32 message pump on a locked OS thread.
type Loop struct {
	queue

	mu       sync.Mutex
	threadID uint32
	quit     bool
}

// New returns a loop that is not yet running.
func New() *Loop {
	return &Loop{}
}

// Run pumps messages on the calling goroutine, locked to its OS thread,
// until Quit is called or ctx is done. Functions posted before Run execute
// first.
func (l *Loop) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	// force creation of the thread message queue
	var m msg
	procPeekMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, wmApp, wmApp, pmNoRemove)

	l.mu.Lock()
	if l.threadID != 0 {
		l.mu.Unlock()
		return errors.New("loop is already running")
	}
	l.threadID = windows.GetCurrentThreadId()
	quit := l.quit
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.threadID = 0
		l.quit = false
		l.mu.Unlock()
	}()

	if quit {
		return nil
	}

	stop := context.AfterFunc(ctx, l.Quit)
	defer stop()

	l.drain()

	for {
		r, _, err := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(r) {
		case -1:
			return err
		case 0:
			return ctx.Err()
		}

		if m.Hwnd == 0 && m.Message == wmWake {
			l.drain()
			continue
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

// Post runs fn on the loop thread.
func (l *Loop) Post(fn func()) {
	l.push(fn)
	l.signal(wmWake)
}

// Quit stops Run. Calling it before Run makes the next Run return at once.
func (l *Loop) Quit() {
	l.mu.Lock()
	l.quit = true
	l.mu.Unlock()
	l.signal(wmQuit)
}

func (l *Loop) signal(message uintptr) {
	l.mu.Lock()
	tid := l.threadID
	l.mu.Unlock()
	if tid != 0 {
		procPostThreadMessageW.Call(uintptr(tid), message, 0, 0)
	}
}
