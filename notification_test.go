package win7notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/win7notify/internal/icon"
)

func TestNew_Defaults(t *testing.T) {
	n := New()
	assert.Equal(t, currentExeName(), n.appName)
	assert.NotEmpty(t, n.appName)
	assert.Empty(t, n.summary)
	assert.Empty(t, n.body)
	assert.Nil(t, n.icon)
	assert.Equal(t, TimeoutDefault, n.timeout)
	assert.False(t, n.silent)
}

func TestNotification_Chaining(t *testing.T) {
	n := New().
		AppName("builder").
		Summary("Build finished").
		Body("All tests passed").
		Timeout(Milliseconds(250)).
		Silent(true)

	assert.Equal(t, "builder", n.appName)
	assert.Equal(t, "Build finished", n.summary)
	assert.Equal(t, "All tests passed", n.body)
	assert.Equal(t, Milliseconds(250), n.timeout)
	assert.True(t, n.silent)

	req := n.request()
	assert.Equal(t, 250*time.Millisecond, req.Timeout)
	assert.False(t, req.Persistent)
	assert.True(t, req.Content.Silent)
}

func TestNotification_NeverIsPersistent(t *testing.T) {
	req := New().Timeout(TimeoutNever).request()
	assert.True(t, req.Persistent)
}

func TestNotification_Icon(t *testing.T) {
	rgba := make([]byte, 2*2*4)
	n := New().Icon(rgba, 2, 2)
	require.NotNil(t, n.icon)
	assert.Equal(t, uint32(2), n.icon.Width)

	// the builder keeps its own copy
	rgba[0] = 0xff
	assert.Zero(t, n.icon.Pixels[0])

	n.Icon(nil, 0, 0)
	assert.Nil(t, n.icon)
}

func TestNotification_IconContractViolation(t *testing.T) {
	tests := []struct {
		name          string
		len           int
		width, height uint32
	}{
		{"not a multiple of four", 15, 2, 2},
		{"too few pixels", 12, 2, 2},
		{"too many pixels", 20, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rgba := make([]byte, tt.len)
			assert.Error(t, ValidateIcon(rgba, tt.width, tt.height))

			defer func() {
				r := recover()
				require.NotNil(t, r)
				_, ok := r.(*icon.DimensionError)
				assert.True(t, ok)
			}()
			New().Icon(rgba, tt.width, tt.height)
		})
	}
}

func TestNotification_RequestCopiesIcon(t *testing.T) {
	n := New().Icon(make([]byte, 4), 1, 1)
	req := n.request()
	req.Content.Icon.Pixels[0] = 9
	assert.Zero(t, n.icon.Pixels[0])
}

func TestValidateIcon(t *testing.T) {
	assert.NoError(t, ValidateIcon(make([]byte, 16*16*4), 16, 16))
	assert.NoError(t, ValidateIcon(nil, 0, 0))
}
