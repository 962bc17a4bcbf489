//go:build windows

package win32

import (
	"errors"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
)

var (
	clsidTaskbarList = ole.NewGUID("{56FDF344-FD6D-11D0-958A-006097C9A090}")
	iidTaskbarList   = ole.NewGUID("{56FDF342-FD6D-11D0-958A-006097C9A090}")
)

// sFalse is returned by CoInitializeEx when COM is already initialised on
// the thread.
const sFalse = 1

type taskbarListVtbl struct {
	ole.IUnknownVtbl
	HrInit       uintptr
	AddTab       uintptr
	DeleteTab    uintptr
	ActivateTab  uintptr
	SetActiveAlt uintptr
}

// taskbarList wraps the shell's ITaskbarList object.
type taskbarList struct {
	unk *ole.IUnknown
}

func newTaskbarList() (*taskbarList, error) {
	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != sFalse {
			return nil, err
		}
	}

	unk, err := ole.CreateInstance(clsidTaskbarList, iidTaskbarList)
	if err != nil {
		return nil, err
	}
	t := &taskbarList{unk: unk}
	if hr, _, _ := syscall.SyscallN(t.vtbl().HrInit, uintptr(unsafe.Pointer(unk))); hr != 0 {
		unk.Release()
		return nil, ole.NewError(hr)
	}
	return t, nil
}

func (t *taskbarList) vtbl() *taskbarListVtbl {
	return (*taskbarListVtbl)(unsafe.Pointer(t.unk.RawVTable))
}

// DeleteTab removes hwnd from the taskbar.
func (t *taskbarList) DeleteTab(hwnd uintptr) error {
	if hr, _, _ := syscall.SyscallN(t.vtbl().DeleteTab, uintptr(unsafe.Pointer(t.unk)), hwnd); hr != 0 {
		return ole.NewError(hr)
	}
	return nil
}

func (t *taskbarList) Release() {
	t.unk.Release()
}
