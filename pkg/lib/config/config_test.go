package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultMaxRecents, cfg.MaxRecents)
	assert.Equal(t, DefaultNotebookCommand, cfg.NotebookCommand)
	assert.Empty(t, cfg.RecentFolders)
	assert.Empty(t, cfg.PinnedFolders)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Theme = ThemeLight
	cfg.Port = "9999"
	cfg.MaxRecents = 3
	cfg.RecentFolders = []string{"/work/a"}
	cfg.PinnedFolders = []PinnedFolder{{Path: "/work/b", Label: "b"}}
	cfg.Programs = []lib.ProgramEntry{{Name: "App1", ExecutablePath: "/bin/app1"}}

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg, loaded)
}

func TestLoadInvalidFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unterminated\n"), 0o644))

	cfg, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	require.NotNil(t, cfg)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoadAppliesDefaultsToPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7777\"\nmax_recents: 42\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7777", cfg.Port)
	assert.Equal(t, DefaultMaxRecents, cfg.MaxRecents)
	assert.Equal(t, ThemeDark, cfg.Theme)
}

func TestSaveNil(t *testing.T) {
	assert.Error(t, Save(filepath.Join(t.TempDir(), "config.yaml"), nil))
}

func TestResolvePath(t *testing.T) {
	p, err := ResolvePath("/explicit.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/explicit.yaml", p)

	t.Setenv(EnvPath, "/from/env.yaml")
	p, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, "/from/env.yaml", p)
}

func TestRegistryConversion(t *testing.T) {
	cfg := Default()
	cfg.Programs = []lib.ProgramEntry{
		{Name: "A", ExecutablePath: "/bin/a"},
		{Name: "B", ExecutablePath: "/bin/b"},
	}

	r := cfg.Registry()
	require.NoError(t, r.Remove("A"))
	_, err := r.AddPath("/bin/c")
	require.NoError(t, err)
	cfg.SetPrograms(r)

	assert.Equal(t, []lib.ProgramEntry{
		{Name: "B", ExecutablePath: "/bin/b"},
		{Name: "c", ExecutablePath: "/bin/c"},
	}, cfg.Programs)
}
