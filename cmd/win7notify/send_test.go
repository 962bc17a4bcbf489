package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/win7notify"
	"github.com/jmylchreest/win7notify/internal/config"
)

func TestDescribe(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	assert.Equal(t, "abc shown, closes 5 seconds from now",
		describe("abc", win7notify.TimeoutDefault, now))
	assert.Equal(t, "abc shown, stays until dismissed",
		describe("abc", win7notify.TimeoutNever, now))
	assert.Equal(t, "abc shown, closes 2 minutes from now",
		describe("abc", win7notify.Milliseconds(120000), now))
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "win7notify", "config.toml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", path, "config", "init"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		globalOpts.configPath = ""
		configOpts.force = false
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, path+"\n", out.String())

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), loaded)

	// a second init refuses to overwrite
	rootCmd.SetArgs([]string{"--config", path, "config", "init"})
	assert.Error(t, rootCmd.Execute())

	require.NoError(t, os.WriteFile(path, []byte("[sound]\nvolume = 10\n"), 0o600))
	rootCmd.SetArgs([]string{"--config", path, "config", "init", "--force"})
	require.NoError(t, rootCmd.Execute())

	loaded, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 80, loaded.Sound.Volume)
}

func TestConfigPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--config", path, "config", "path"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		globalOpts.configPath = ""
	})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, path+"\n", out.String())
}
