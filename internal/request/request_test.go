package request

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/win7notify"
	"github.com/jmylchreest/win7notify/internal/config"
)

func readAll(t *testing.T, d *Decoder) ([]*Request, error) {
	t.Helper()
	var reqs []*Request
	for {
		req, err := d.Next()
		if err == io.EOF {
			return reqs, nil
		}
		if err != nil {
			return reqs, err
		}
		reqs = append(reqs, req)
	}
}

func TestDecoder_JSONLines(t *testing.T) {
	input := `{"app_name": "ci", "summary": "Build started"}
{"summary": "Build finished", "body": "42 tests passed", "timeout": "never", "silent": true}
`
	d, err := NewDecoder(strings.NewReader(input), FormatJSON)
	require.NoError(t, err)

	reqs, err := readAll(t, d)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "ci", reqs[0].AppName)
	assert.Equal(t, "Build started", reqs[0].Summary)
	assert.Equal(t, "never", reqs[1].Timeout)
	assert.True(t, reqs[1].Silent)
	assert.Equal(t, 2, d.Index())
}

func TestDecoder_YAMLDocuments(t *testing.T) {
	input := `summary: Disk almost full
body: |
  /dev/sda1 is at 95%
---
app_name: backup
summary: Backup done
timeout: 2s
`
	d, err := NewDecoder(strings.NewReader(input), "YAML")
	require.NoError(t, err)

	reqs, err := readAll(t, d)
	require.NoError(t, err)
	require.Len(t, reqs, 2)
	assert.Equal(t, "/dev/sda1 is at 95%", reqs[0].Body)
	assert.Equal(t, "backup", reqs[1].AppName)
	assert.Equal(t, "2s", reqs[1].Timeout)
}

func TestDecoder_Errors(t *testing.T) {
	_, err := NewDecoder(strings.NewReader(""), "xml")
	assert.Error(t, err)

	d, err := NewDecoder(strings.NewReader(`{"summary": "ok"} {"summary": `), FormatJSON)
	require.NoError(t, err)
	reqs, err := readAll(t, d)
	assert.Len(t, reqs, 1)

	var reqErr *Error
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 2, reqErr.Index)

	d, err = NewDecoder(strings.NewReader(`{"app_name": "empty"}`), FormatJSON)
	require.NoError(t, err)
	_, err = d.Next()
	require.ErrorAs(t, err, &reqErr)
	assert.Contains(t, err.Error(), "summary or body is required")
}

func TestDecoder_Sanitizes(t *testing.T) {
	d, err := NewDecoder(strings.NewReader(`{"summary": "  a\u0007b  ", "body": "line1\nline2"}`), FormatJSON)
	require.NoError(t, err)
	req, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, "a b", req.Summary)
	assert.Equal(t, "line1\nline2", req.Body)
}

func TestRequest_Build(t *testing.T) {
	defaults := config.NotificationConfig{AppName: "fallback", Timeout: win7notify.Milliseconds(1000)}

	n, err := (&Request{Summary: "s"}).Build(defaults)
	require.NoError(t, err)
	assert.NotNil(t, n)

	_, err = (&Request{Summary: "s", Timeout: "later"}).Build(defaults)
	assert.Error(t, err)

	_, err = (&Request{Summary: "s", IconPath: filepath.Join(t.TempDir(), "missing.png")}).Build(defaults)
	assert.Error(t, err)
}

func TestRequest_BuildWithIcon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icon.png")
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for i := range 32 {
		img.Set(i, i, color.NRGBA{R: 255, A: 255})
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	n, err := (&Request{Summary: "with icon", IconPath: path}).Build(config.NotificationConfig{})
	require.NoError(t, err)
	assert.NotNil(t, n)
}
