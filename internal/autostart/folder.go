package autostart

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// StartupFolderPath returns the per-user Startup folder under appData.
func StartupFolderPath(appData string) string {
	return filepath.Join(appData, "Microsoft", "Windows", "Start Menu", "Programs", "Startup")
}

// StartupFolderReader lists files in the user's Startup folder. Shortcuts
// are reported as files; their targets are not resolved.
type StartupFolderReader struct {
	logger *zap.Logger
}

// NewStartupFolderReader creates a reader that locates the folder via APPDATA.
func NewStartupFolderReader(logger *zap.Logger) *StartupFolderReader {
	return &StartupFolderReader{logger: logger.Named("startupfolder")}
}

// Name returns the reader identifier.
func (r *StartupFolderReader) Name() string { return "startup folder" }

// Read lists regular files directly inside the Startup folder. An unset
// APPDATA or a missing folder yields no records.
func (r *StartupFolderReader) Read(ctx context.Context) ([]StartupItem, error) {
	appData, ok := os.LookupEnv("APPDATA")
	if !ok || appData == "" {
		r.logger.Debug("APPDATA not set, skipping startup folder")
		return nil, nil
	}
	dir := StartupFolderPath(appData)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			r.logger.Debug("Startup folder not present", zap.String("dir", dir))
			return nil, nil
		}
		return nil, &SourceUnavailableError{Source: r.Name(), Err: err}
	}

	var items []StartupItem
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, &SourceUnavailableError{Source: r.Name(), Err: err}
		}
		path := filepath.Join(dir, entry.Name())
		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			r.logger.Debug("Skipping startup folder entry", zap.String("path", path), zap.Error(err))
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		items = append(items, NewStartupFolderItem(path))
	}
	return items, nil
}
