//go:build windows

package autostart

import (
	"go.uber.org/zap"

	"github.com/bootwatch/bootwatch/internal/backend"
)

// DefaultReaders returns the Windows sources: Run keys, then the Startup folder.
func DefaultReaders(_ backend.Runner, logger *zap.Logger) []Reader {
	return []Reader{
		NewRunKeyReader(NewRunKeyStore(), logger),
		NewStartupFolderReader(logger),
	}
}
