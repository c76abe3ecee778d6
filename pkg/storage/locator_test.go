package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearDataDirEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvDataDir, "")
	t.Setenv(EnvXDGDataHome, "")
	t.Setenv(EnvXDGDataDirs, "")
	os.Unsetenv(EnvDataDir)
	os.Unsetenv(EnvXDGDataHome)
	os.Unsetenv(EnvXDGDataDirs)
}

func TestResolveDataDir_Override(t *testing.T) {
	clearDataDirEnv(t)
	want := filepath.Join(t.TempDir(), "custom")

	got, err := ResolveDataDir(want)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.DirExists(t, got)
}

func TestResolveDataDir_OverrideBeatsEnv(t *testing.T) {
	clearDataDirEnv(t)
	tmp := t.TempDir()
	t.Setenv(EnvDataDir, filepath.Join(tmp, "from-env"))
	want := filepath.Join(tmp, "from-override")

	got, err := ResolveDataDir(want)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveDataDir_EnvDataDir(t *testing.T) {
	clearDataDirEnv(t)
	want := filepath.Join(t.TempDir(), "wt-data")
	t.Setenv(EnvDataDir, want)
	t.Setenv(EnvXDGDataHome, filepath.Join(t.TempDir(), "should-be-ignored"))

	got, err := ResolveDataDir("")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.DirExists(t, got)
}

func TestResolveDataDir_XDGDataHome(t *testing.T) {
	clearDataDirEnv(t)
	home := t.TempDir()
	t.Setenv(EnvXDGDataHome, home)

	got, err := ResolveDataDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "wags_tails"), got)
	assert.DirExists(t, got)
}

func TestResolveDataDir_XDGDataDirs(t *testing.T) {
	clearDataDirEnv(t)
	first := t.TempDir()
	second := t.TempDir()
	t.Setenv(EnvXDGDataDirs, first+":"+second)

	got, err := ResolveDataDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(first, "wags_tails"), got)
}

func TestResolveDataDir_XDGDataDirsSkipsFileCollision(t *testing.T) {
	clearDataDirEnv(t)
	first := t.TempDir()
	second := t.TempDir()
	// A plain file squatting on the candidate path disqualifies the entry.
	require.NoError(t, os.WriteFile(filepath.Join(first, "wags_tails"), []byte("not a dir"), 0o644))
	t.Setenv(EnvXDGDataDirs, first+":"+second)

	got, err := ResolveDataDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "wags_tails"), got)
}

func TestResolveDataDir_HomeFallback(t *testing.T) {
	clearDataDirEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolveDataDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "wags_tails"), got)
	assert.DirExists(t, got)
}
