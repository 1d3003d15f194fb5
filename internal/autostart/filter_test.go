package autostart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	items := []StartupItem{
		NewRegistryRun(HiveCurrentUser, "Updater", `C:\a\upd.exe`),
		NewRegistryRun(HiveLocalMachine, "Updater", `C:\b\upd.exe`),
		NewStartupFolderItem("/Startup/Updater"),
		NewLoginItem("Slack"),
	}

	assert.Len(t, Select(items, Filter{}), 4)
	assert.Len(t, Select(items, Filter{Label: "Updater"}), 3)
	assert.Len(t, Select(items, Filter{Label: "Updater", Kind: KindRegistryRun}), 2)

	got := Select(items, Filter{Label: "Updater", Scope: ScopeSystem})
	if assert.Len(t, got, 1) {
		path, _ := got[0].Path()
		assert.Equal(t, `C:\b\upd.exe`, path)
	}

	assert.Len(t, Select(items, Filter{Path: `C:\a\upd.exe`}), 1)
	assert.Empty(t, Select(items, Filter{Label: "Slack", Path: "/anything"}))
	assert.Empty(t, Select(items, Filter{Label: "Missing"}))
}
