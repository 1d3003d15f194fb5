//go:build darwin

package autostart

import (
	"go.uber.org/zap"

	"github.com/bootwatch/bootwatch/internal/backend"
)

// DefaultReaders returns the macOS sources: launchd plists, then login items.
func DefaultReaders(runner backend.Runner, logger *zap.Logger) []Reader {
	return []Reader{
		NewPlistReader(DefaultLaunchDirs, logger),
		NewLoginItemReader(runner, logger),
	}
}
