//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

var (
	kernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleOutputCP = kernel32.NewProc("GetConsoleOutputCP")
	procGetACP             = kernel32.NewProc("GetACP")
)

// WindowsPlatform implements Platform for Windows systems.
type WindowsPlatform struct{}

// New creates a new Windows platform instance.
func New() Platform {
	return &WindowsPlatform{}
}

// Name returns the platform identifier.
func (p *WindowsPlatform) Name() string { return "windows" }

// IsElevated checks the process token for elevation.
func (p *WindowsPlatform) IsElevated() bool {
	var token windows.Token
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &token); err != nil {
		return false
	}
	defer token.Close()
	return token.IsElevated()
}

// ConsoleCodePage returns the console output code page, falling back to the
// ANSI code page when the process has no console attached.
func (p *WindowsPlatform) ConsoleCodePage() uint32 {
	if cp := callCodePage(procGetConsoleOutputCP); cp != 0 {
		return cp
	}
	if cp := callCodePage(procGetACP); cp != 0 {
		return cp
	}
	return CodePageUTF8
}

func callCodePage(proc *windows.LazyProc) uint32 {
	if err := proc.Find(); err != nil {
		return 0
	}
	r, _, _ := proc.Call()
	return uint32(r)
}
