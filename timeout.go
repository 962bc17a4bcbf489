package win7notify

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultTimeout is how long a notification with TimeoutDefault stays up.
const DefaultTimeout = 5000 * time.Millisecond

type timeoutKind uint8

const (
	timeoutDefault timeoutKind = iota
	timeoutNever
	timeoutMillis
)

// Timeout controls when a notification closes on its own.
type Timeout struct {
	kind timeoutKind
	ms   uint32
}

var (
	// TimeoutDefault closes the notification after DefaultTimeout.
	TimeoutDefault = Timeout{kind: timeoutDefault}
	// TimeoutNever keeps the notification until the user closes it.
	TimeoutNever = Timeout{kind: timeoutNever}
)

// Milliseconds closes the notification after n milliseconds.
func Milliseconds(n uint32) Timeout {
	return Timeout{kind: timeoutMillis, ms: n}
}

// Duration resolves t. The second result is false for TimeoutNever, which
// never expires.
func (t Timeout) Duration() (time.Duration, bool) {
	switch t.kind {
	case timeoutNever:
		return 0, false
	case timeoutMillis:
		return time.Duration(t.ms) * time.Millisecond, true
	default:
		return DefaultTimeout, true
	}
}

func (t Timeout) String() string {
	switch t.kind {
	case timeoutNever:
		return "never"
	case timeoutMillis:
		return strconv.FormatUint(uint64(t.ms), 10)
	default:
		return "default"
	}
}

// ParseTimeout accepts "default", "never", an integer number of
// milliseconds or a Go duration string such as "2.5s".
func ParseTimeout(s string) (Timeout, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "default":
		return TimeoutDefault, nil
	case "never":
		return TimeoutNever, nil
	}

	if ms, err := strconv.ParseUint(s, 10, 32); err == nil {
		return Milliseconds(uint32(ms)), nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return Timeout{}, fmt.Errorf("invalid timeout %q: use default, never, milliseconds or a duration", s)
	}
	if d < 0 {
		return Timeout{}, fmt.Errorf("invalid timeout %q: must not be negative", s)
	}
	ms := d.Milliseconds()
	if ms > int64(^uint32(0)) {
		return Timeout{}, fmt.Errorf("invalid timeout %q: too long", s)
	}
	return Milliseconds(uint32(ms)), nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Timeout) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Timeout) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeout(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
