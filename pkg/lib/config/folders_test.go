package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinFolder(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.PinFolder("/work/a", "alpha"))
	require.NoError(t, cfg.PinFolder("/work/b", "beta"))
	require.NoError(t, cfg.PinFolder("/work/a", "  first "))

	assert.Equal(t, []string{"first", "beta"}, cfg.PinnedLabels())
	p, ok := cfg.FindPinnedByLabel("beta")
	require.True(t, ok)
	assert.Equal(t, "/work/b", p.Path)

	assert.Error(t, cfg.PinFolder("", "x"))
	assert.Error(t, cfg.PinFolder("/work/c", " "))
}

func TestUnpinFolder(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.PinFolder("/work/a", "alpha"))

	assert.True(t, cfg.UnpinFolder("/work/a"))
	assert.False(t, cfg.UnpinFolder("/work/a"))
	_, ok := cfg.FindPinnedByPath("/work/a")
	assert.False(t, ok)
}

func TestRenamePinned(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.PinFolder("/work/a", "alpha"))

	require.NoError(t, cfg.RenamePinned("alpha", " omega "))
	assert.Equal(t, []string{"omega"}, cfg.PinnedLabels())

	assert.Error(t, cfg.RenamePinned("missing", "x"))
	assert.Error(t, cfg.RenamePinned("omega", "   "))
}

func TestAddRecentMovesToFrontAndCaps(t *testing.T) {
	cfg := Default()
	cfg.MaxRecents = 3

	for _, f := range []string{"/a", "/b", "/c", "/d"} {
		cfg.AddRecent(f)
	}
	assert.Equal(t, []string{"/d", "/c", "/b"}, cfg.RecentFolders)

	cfg.AddRecent("/b")
	assert.Equal(t, []string{"/b", "/d", "/c"}, cfg.RecentFolders)
}

func TestDeleteAndClearRecents(t *testing.T) {
	cfg := Default()
	cfg.AddRecent("/a")
	cfg.AddRecent("/b")

	assert.True(t, cfg.DeleteRecent("/a"))
	assert.False(t, cfg.DeleteRecent("/a"))
	assert.Equal(t, []string{"/b"}, cfg.RecentFolders)

	cfg.ClearRecents()
	assert.Empty(t, cfg.RecentFolders)
}
