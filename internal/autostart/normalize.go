package autostart

import "path/filepath"

// The constructors below are the only way to build a StartupItem. Each one
// sets label, path, kind and scope together for its source.

// NewPlistAgent builds a record for a launchd job file.
func NewPlistAgent(path string, scope Scope) StartupItem {
	return StartupItem{
		label:   filepath.Base(path),
		path:    path,
		hasPath: true,
		kind:    KindPlistAgent,
		scope:   scope,
	}
}

// NewLoginItem builds a record for a login item. The OS does not report a
// path for these.
func NewLoginItem(name string) StartupItem {
	return StartupItem{
		label: name,
		kind:  KindLoginItem,
		scope: ScopeUser,
	}
}

// NewRegistryRun builds a record for a Run key value read from hive.
func NewRegistryRun(hive Hive, valueName, data string) StartupItem {
	return StartupItem{
		label:   valueName,
		path:    data,
		hasPath: true,
		kind:    KindRegistryRun,
		scope:   hive.Scope(),
	}
}

// NewStartupFolderItem builds a record for a file in the user's Startup folder.
func NewStartupFolderItem(path string) StartupItem {
	return StartupItem{
		label:   filepath.Base(path),
		path:    path,
		hasPath: true,
		kind:    KindStartupFolder,
		scope:   ScopeUser,
	}
}
