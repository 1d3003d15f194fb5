//go:build !darwin && !windows

package autostart

import (
	"go.uber.org/zap"

	"github.com/bootwatch/bootwatch/internal/backend"
)

// DefaultReaders returns no sources: this OS has no supported startup
// mechanisms, so enumeration yields an empty list.
func DefaultReaders(_ backend.Runner, _ *zap.Logger) []Reader {
	return nil
}
