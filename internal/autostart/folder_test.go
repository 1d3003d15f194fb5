package autostart

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStartupFolderReader_ListsFiles(t *testing.T) {
	appData := t.TempDir()
	t.Setenv("APPDATA", appData)
	dir := StartupFolderPath(appData)
	writeFile(t, filepath.Join(dir, "Spotify.lnk"))
	writeFile(t, filepath.Join(dir, "desktop.ini"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0755))

	items, err := NewStartupFolderReader(zap.NewNop()).Read(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	labels := []string{items[0].Label(), items[1].Label()}
	assert.ElementsMatch(t, []string{"Spotify.lnk", "desktop.ini"}, labels)
	for _, item := range items {
		assert.Equal(t, KindStartupFolder, item.Kind())
		assert.Equal(t, ScopeUser, item.Scope())
		path, ok := item.Path()
		assert.True(t, ok)
		assert.Equal(t, filepath.Join(dir, item.Label()), path)
	}
}

func TestStartupFolderReader_UnsetAppData(t *testing.T) {
	t.Setenv("APPDATA", "")

	items, err := NewStartupFolderReader(zap.NewNop()).Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStartupFolderReader_MissingFolder(t *testing.T) {
	t.Setenv("APPDATA", t.TempDir())

	items, err := NewStartupFolderReader(zap.NewNop()).Read(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}
