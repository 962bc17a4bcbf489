package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/win7notify"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.Notification.AppName)
	assert.Equal(t, win7notify.TimeoutDefault, cfg.Notification.Timeout)
	assert.True(t, cfg.Sound.Enabled)
	assert.Equal(t, 80, cfg.Sound.Volume)
	assert.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[notification]
app_name = "builder"
timeout = "never"

[sound]
enabled = true
file = "~/sounds/ding.wav"
volume = 40

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "builder", cfg.Notification.AppName)
	assert.Equal(t, win7notify.TimeoutNever, cfg.Notification.Timeout)
	assert.Equal(t, "~/sounds/ding.wav", cfg.Sound.File)
	assert.Equal(t, 40, cfg.Sound.Volume)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_TimeoutForms(t *testing.T) {
	tests := []struct {
		value string
		want  win7notify.Timeout
	}{
		{`"default"`, win7notify.TimeoutDefault},
		{`"2500"`, win7notify.Milliseconds(2500)},
		{`"3s"`, win7notify.Milliseconds(3000)},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte("[notification]\ntimeout = "+tt.value+"\n"), 0600))

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Notification.Timeout)
		})
	}
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sound]\nvolume = 10\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Sound.Volume)
	assert.True(t, cfg.Sound.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "[sound\n"},
		{"volume out of range", "[sound]\nvolume = 150\n"},
		{"bad timeout", "[notification]\ntimeout = \"soon\"\n"},
		{"bad log level", "[log]\nlevel = \"loud\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0600))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Notification.AppName = "saved"
	cfg.Notification.Timeout = win7notify.Milliseconds(1200)
	cfg.Sound.Enabled = false
	require.NoError(t, cfg.Save(path))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "a.wav"), ExpandPath("~/a.wav"))
	assert.Equal(t, "/abs/a.wav", ExpandPath("/abs/a.wav"))
}

func TestWatcher_Reloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sound]\nvolume = 10\n"), 0600))

	var mu sync.Mutex
	var got []*Config
	w, err := NewWatcher(path, func(cfg *Config) {
		mu.Lock()
		got = append(got, cfg)
		mu.Unlock()
	}, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer func() { _ = w.Stop() }()

	// an invalid write is skipped
	require.NoError(t, os.WriteFile(path, []byte("[sound]\nvolume = 999\n"), 0600))
	require.NoError(t, os.WriteFile(path, []byte("[sound]\nvolume = 55\n"), 0600))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) > 0 && got[len(got)-1].Sound.Volume == 55
	}, 5*time.Second, 20*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for _, cfg := range got {
		assert.NotEqual(t, 999, cfg.Sound.Volume)
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	calls := make(chan struct{}, 10)
	w, err := NewWatcher(path, func(*Config) { calls <- struct{}{} }, nil)
	require.NoError(t, err)
	require.NoError(t, w.Start())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x = 1\n"), 0600))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, w.Stop())

	assert.Empty(t, calls)
}
