//go:build !windows

package platform

import (
	"os"
	"runtime"
)

// UnixPlatform implements Platform for macOS, Linux and other Unix systems.
// Console tools there emit UTF-8.
type UnixPlatform struct{}

// New creates the platform instance for the running OS.
func New() Platform {
	return &UnixPlatform{}
}

// Name returns the platform identifier.
func (p *UnixPlatform) Name() string { return runtime.GOOS }

// IsElevated reports whether the effective user is root.
func (p *UnixPlatform) IsElevated() bool { return os.Geteuid() == 0 }

// ConsoleCodePage always returns CodePageUTF8.
func (p *UnixPlatform) ConsoleCodePage() uint32 { return CodePageUTF8 }
