package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TALLYPAD_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "pink", cfg.UI.Accent)
	require.True(t, cfg.UI.Mouse)
	require.True(t, cfg.UI.AltScreen)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := []byte("[ui]\naccent = \"teal\"\nmouse = false\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	t.Setenv("TALLYPAD_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "teal", cfg.UI.Accent)
	require.False(t, cfg.UI.Mouse)
	// Unset keys keep their defaults.
	require.True(t, cfg.UI.AltScreen)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\naccent = \"teal\"\n"), 0o644))
	t.Setenv("TALLYPAD_CONFIG", path)
	t.Setenv("TALLYPAD_UI_ACCENT", "blue")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "blue", cfg.UI.Accent)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("TALLYPAD_CONFIG", path)

	want := Config{UI: UIConfig{Accent: "lavender", Mouse: false, AltScreen: false}}
	require.NoError(t, Save(want))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, want, cfg)
}
