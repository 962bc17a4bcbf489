// Package request decodes streams of notification requests, one JSON value
// or YAML document per notification.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/win7notify"
	"github.com/jmylchreest/win7notify/internal/config"
	"github.com/jmylchreest/win7notify/internal/display"
	"github.com/jmylchreest/win7notify/internal/icon"
)

// Format is a request stream encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported stream formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML}
}

// Request is one notification to show.
type Request struct {
	AppName  string `json:"app_name,omitempty" yaml:"app_name,omitempty"`
	Summary  string `json:"summary" yaml:"summary"`
	Body     string `json:"body,omitempty" yaml:"body,omitempty"`
	IconPath string `json:"icon_path,omitempty" yaml:"icon_path,omitempty"`
	Timeout  string `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	Silent   bool   `json:"silent,omitempty" yaml:"silent,omitempty"`
}

// Error reports a request that could not be decoded or built. Index counts
// requests from 1.
type Error struct {
	Index   int
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("request %d: %s", e.Index, e.Message)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Decoder reads requests one at a time.
type Decoder struct {
	next  func(any) error
	index int
}

// NewDecoder returns a decoder reading format from r.
func NewDecoder(r io.Reader, format Format) (*Decoder, error) {
	switch Format(strings.ToLower(string(format))) {
	case FormatJSON:
		return &Decoder{next: json.NewDecoder(r).Decode}, nil
	case FormatYAML:
		return &Decoder{next: yaml.NewDecoder(r).Decode}, nil
	default:
		return nil, fmt.Errorf("unknown request format %q, must be one of: %v", format, Formats())
	}
}

// Next returns the next request, or io.EOF at the end of the stream. A
// malformed value ends the stream with an *Error.
func (d *Decoder) Next() (*Request, error) {
	d.index++
	var req Request
	if err := d.next(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, &Error{Index: d.index, Message: "failed to decode", Err: err}
	}

	req.AppName = sanitize(req.AppName)
	req.Summary = sanitize(req.Summary)
	req.Body = sanitize(req.Body)
	if req.Summary == "" && req.Body == "" {
		return nil, &Error{Index: d.index, Message: "summary or body is required"}
	}
	return &req, nil
}

// Index is the 1-based position of the last request read.
func (d *Decoder) Index() int {
	return d.index
}

// Build turns req into a notification, filling unset fields from defaults.
// An icon that cannot be loaded is an error; the caller may retry without it.
func (req *Request) Build(defaults config.NotificationConfig) (*win7notify.Notification, error) {
	n := win7notify.New().
		Summary(req.Summary).
		Body(req.Body).
		Silent(req.Silent).
		Timeout(defaults.Timeout)

	switch {
	case req.AppName != "":
		n.AppName(req.AppName)
	case defaults.AppName != "":
		n.AppName(defaults.AppName)
	}

	if req.Timeout != "" {
		t, err := win7notify.ParseTimeout(req.Timeout)
		if err != nil {
			return nil, err
		}
		n.Timeout(t)
	}

	if req.IconPath != "" {
		img, err := icon.Load(config.ExpandPath(req.IconPath), display.IconSize)
		if err != nil {
			return nil, err
		}
		n.Icon(img.Pixels, img.Width, img.Height)
	}
	return n, nil
}

// sanitize replaces control characters other than newline and tab with
// spaces and trims the result.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 32 && r != '\n' && r != '\t' {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
