package win7notify

import (
	"os"
	"path/filepath"

	"github.com/jmylchreest/win7notify/internal/display"
	"github.com/jmylchreest/win7notify/internal/icon"
)

// Notification describes one popup. Build it with New and the chained
// setters, then call Show. Show takes a private copy, so the same
// Notification may be changed and shown again.
type Notification struct {
	appName string
	summary string
	body    string
	icon    *icon.Image
	timeout Timeout
	silent  bool
}

// New returns a notification with an empty summary and body, no icon, the
// default timeout and the current executable's file name as app name.
func New() *Notification {
	return &Notification{
		appName: currentExeName(),
		timeout: TimeoutDefault,
	}
}

// AppName sets the small header label.
func (n *Notification) AppName(name string) *Notification {
	n.appName = name
	return n
}

// Summary sets the bold title line.
func (n *Notification) Summary(summary string) *Notification {
	n.summary = summary
	return n
}

// Body sets the paragraph text. It is word-wrapped and shown as is; markup
// is not interpreted.
func (n *Notification) Body(body string) *Notification {
	n.body = body
	return n
}

// Icon sets the header icon from a straight-alpha RGBA buffer. It panics
// with *icon.DimensionError if len(rgba) is not width*height*4; use
// ValidateIcon to check untrusted input first. A nil or empty buffer with
// zero dimensions clears the icon.
func (n *Notification) Icon(rgba []byte, width, height uint32) *Notification {
	if len(rgba) == 0 && width == 0 && height == 0 {
		n.icon = nil
		return n
	}
	img, err := icon.New(rgba, width, height)
	if err != nil {
		panic(err)
	}
	n.icon = img
	return n
}

// Timeout sets when the notification closes on its own.
func (n *Notification) Timeout(t Timeout) *Notification {
	n.timeout = t
	return n
}

// Silent suppresses the alert sound played when the notification appears.
func (n *Notification) Silent(silent bool) *Notification {
	n.silent = silent
	return n
}

// Show displays the notification. On Windows the calling thread must run a
// message loop for the popup to paint and to receive clicks.
func (n *Notification) Show() error {
	_, err := n.ShowWithID()
	return err
}

// ShowWithID is Show, returning the identifier later passed to the close
// callback.
func (n *Notification) ShowWithID() (string, error) {
	s, err := defaultShower()
	if err != nil {
		return "", err
	}
	return s.Show(n.request())
}

func (n *Notification) request() display.Request {
	d, expires := n.timeout.Duration()
	return display.Request{
		Content: display.Content{
			AppName: n.appName,
			Summary: n.summary,
			Body:    n.body,
			Icon:    n.icon.Clone(),
			Silent:  n.silent,
		},
		Timeout:    d,
		Persistent: !expires,
	}
}

func currentExeName() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Base(exe)
}
