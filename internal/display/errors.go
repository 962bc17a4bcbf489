package display

import (
	"errors"
	"fmt"
	"syscall"
)

// ErrUnsupported is returned when no window backend exists for the platform.
var ErrUnsupported = errors.New("notification windows are not supported on this platform")

// PlatformError represents a failed platform call during Show. Code carries
// the platform's last-error value when one was available.
type PlatformError struct {
	Op    string
	Code  uint32
	Cause error
}

func (e *PlatformError) Error() string {
	msg := "failed to " + e.Op
	if e.Code != 0 {
		msg += fmt.Sprintf(" (code %d)", e.Code)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *PlatformError) Unwrap() error {
	return e.Cause
}

// platformError wraps err, lifting an errno into Code.
func platformError(op string, err error) *PlatformError {
	pe := &PlatformError{Op: op, Cause: err}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		pe.Code = uint32(errno)
	}
	return pe
}
