package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRootPrefersXDG(t *testing.T) {
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", appName), ConfigRoot())
}

func TestStoreLifecycle(t *testing.T) {
	s := NewStore(t.TempDir())

	_, err := s.ActiveConfigPath()
	assert.ErrorIs(t, err, ErrNoConfig)

	def, err := s.InitDefaultConfig()
	require.NoError(t, err)
	assert.Equal(t, s.PathByLabel(DefaultLabel), def)

	_, err = s.InitDefaultConfig()
	assert.ErrorIs(t, err, os.ErrExist)

	work, err := s.CreateEmptyConfig("work")
	require.NoError(t, err)
	assert.FileExists(t, work)

	_, err = s.CreateEmptyConfig("work")
	assert.Error(t, err)

	require.NoError(t, s.SwitchConfig("work"))
	active, err := s.ActiveConfigPath()
	require.NoError(t, err)
	assert.Equal(t, work, active)

	require.NoError(t, s.RenameConfig("work", "office"))
	label, err := s.CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, "office", label)

	list, err := s.ListConfigs()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, DefaultLabel, list[0].Label)
	assert.False(t, list[0].Active)
	assert.Equal(t, "office", list[1].Label)
	assert.True(t, list[1].Active)

	var buf bytes.Buffer
	require.NoError(t, s.RemoveConfig("office", &buf))
	assert.Contains(t, buf.String(), "Fallback switched to: Default")
	label, err = s.CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, DefaultLabel, label)

	assert.Error(t, s.RemoveConfig(DefaultLabel, &buf))
	assert.Error(t, s.RemoveConfig("missing", &buf))
}

func TestStoreRejectsBadLabels(t *testing.T) {
	s := NewStore(t.TempDir())

	assert.ErrorIs(t, s.SwitchConfig("  "), ErrEmptyLabel)
	_, err := s.CreateEmptyConfig("../escape")
	assert.Error(t, err)
	assert.Error(t, s.SwitchConfig("nope"))
}

func TestAddConfigValidatesSource(t *testing.T) {
	s := NewStore(t.TempDir())
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte("output: books\n"), 0o644))
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("output: [\n"), 0o644))

	require.NoError(t, s.AddConfig("books", good))
	assert.FileExists(t, s.PathByLabel("books"))
	assert.Error(t, s.AddConfig("books", good))
	assert.Error(t, s.AddConfig("broken", bad))
	assert.NoFileExists(t, s.PathByLabel("broken"))
}

func TestResetConfig(t *testing.T) {
	s := NewStore(t.TempDir())
	path, err := s.InitDefaultConfig()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("output: elsewhere\n"), 0o644))

	got, err := s.ResetConfig(DefaultLabel)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	cfg, err := loadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Output)

	_, err = s.ResetConfig("ghost")
	assert.Error(t, err)
}
