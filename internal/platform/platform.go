// Package platform provides the OS facts the startup tooling needs beyond
// the readers themselves: the console text encoding used by command-line
// tools, whether the process runs elevated, and a host summary.
// Each supported OS implements the Platform interface.
package platform

// Platform exposes OS-specific process and console facts.
type Platform interface {
	// Name returns the platform name (windows, darwin, linux, ...).
	Name() string

	// IsElevated reports whether the process runs as root/Administrator.
	IsElevated() bool

	// ConsoleCodePage returns the code page console tools write their
	// output in. Platforms without code pages report CodePageUTF8.
	ConsoleCodePage() uint32
}
