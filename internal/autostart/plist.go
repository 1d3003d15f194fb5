package autostart

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
)

// LaunchDir is a directory scanned for launchd job files.
type LaunchDir struct {
	Path  string
	Scope Scope
}

// DefaultLaunchDirs are scanned in this order. The first entry is expanded
// against the user's home directory.
var DefaultLaunchDirs = []LaunchDir{
	{Path: "~/Library/LaunchAgents", Scope: ScopeUser},
	{Path: "/Library/LaunchAgents", Scope: ScopeSystem},
	{Path: "/Library/LaunchDaemons", Scope: ScopeSystem},
}

const plistExt = ".plist"

// PlistReader lists launchd job files. Identity is the file name only; the
// plist contents are never parsed.
type PlistReader struct {
	dirs   []LaunchDir
	logger *zap.Logger
}

// NewPlistReader creates a reader over dirs.
func NewPlistReader(dirs []LaunchDir, logger *zap.Logger) *PlistReader {
	return &PlistReader{
		dirs:   dirs,
		logger: logger.Named("plist"),
	}
}

// Name returns the reader identifier.
func (r *PlistReader) Name() string { return "launchd plists" }

// Read scans every directory in order. Missing or unreadable directories
// contribute nothing.
func (r *PlistReader) Read(ctx context.Context) ([]StartupItem, error) {
	var items []StartupItem
	for _, d := range r.dirs {
		if err := ctx.Err(); err != nil {
			return nil, &SourceUnavailableError{Source: r.Name(), Err: err}
		}
		dir, err := homedir.Expand(d.Path)
		if err != nil {
			r.logger.Debug("Skipping launch directory", zap.String("dir", d.Path), zap.Error(err))
			continue
		}
		items = append(items, r.scan(dir, d.Scope)...)
	}
	return items, nil
}

func (r *PlistReader) scan(dir string, scope Scope) []StartupItem {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		r.logger.Debug("Skipping launch directory", zap.String("dir", dir), zap.Error(err))
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		r.logger.Debug("Cannot list launch directory", zap.String("dir", dir), zap.Error(err))
		return nil
	}

	var items []StartupItem
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) != plistExt {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		// Stat follows symlinks, so a linked plist counts if it points at a file.
		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			r.logger.Debug("Skipping launch entry", zap.String("path", path), zap.Error(err))
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		items = append(items, NewPlistAgent(path, scope))
	}
	return items
}
