package autostart

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("<plist/>"), 0644))
}

func TestPlistReader_OnlyPlistFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "com.example.Helper.plist"))
	writeFile(t, filepath.Join(dir, "notes.txt"))

	r := NewPlistReader([]LaunchDir{{Path: dir, Scope: ScopeUser}}, zap.NewNop())
	items, err := r.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	item := items[0]
	assert.Equal(t, "com.example.Helper.plist", item.Label())
	assert.Equal(t, KindPlistAgent, item.Kind())
	assert.Equal(t, ScopeUser, item.Scope())
	path, ok := item.Path()
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "com.example.Helper.plist"), path)
}

func TestPlistReader_MissingDirectoryDoesNotStopOthers(t *testing.T) {
	first := t.TempDir()
	last := t.TempDir()
	writeFile(t, filepath.Join(first, "a.plist"))
	writeFile(t, filepath.Join(last, "b.plist"))

	notADir := filepath.Join(t.TempDir(), "file")
	writeFile(t, notADir)

	r := NewPlistReader([]LaunchDir{
		{Path: first, Scope: ScopeUser},
		{Path: filepath.Join(t.TempDir(), "does-not-exist"), Scope: ScopeSystem},
		{Path: notADir, Scope: ScopeSystem},
		{Path: last, Scope: ScopeSystem},
	}, zap.NewNop())

	items, err := r.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a.plist", items[0].Label())
	assert.Equal(t, ScopeUser, items[0].Scope())
	assert.Equal(t, "b.plist", items[1].Label())
	assert.Equal(t, ScopeSystem, items[1].Scope())
}

func TestPlistReader_SkipsDirectoriesNamedLikePlists(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "bundle.plist"), 0755))
	writeFile(t, filepath.Join(dir, "real.plist"))

	r := NewPlistReader([]LaunchDir{{Path: dir, Scope: ScopeSystem}}, zap.NewNop())
	items, err := r.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "real.plist", items[0].Label())
}

func TestPlistReader_ExpandsHome(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	writeFile(t, filepath.Join(home, "Library", "LaunchAgents", "com.example.agent.plist"))

	r := NewPlistReader([]LaunchDir{{Path: "~/Library/LaunchAgents", Scope: ScopeUser}}, zap.NewNop())
	items, err := r.Read(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	path, _ := items[0].Path()
	assert.Equal(t, filepath.Join(home, "Library", "LaunchAgents", "com.example.agent.plist"), path)
}

func TestPlistReader_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewPlistReader([]LaunchDir{{Path: t.TempDir(), Scope: ScopeUser}}, zap.NewNop())
	_, err := r.Read(ctx)

	var unavailable *SourceUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.ErrorIs(t, err, context.Canceled)
}
