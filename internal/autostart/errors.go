package autostart

import (
	"errors"
	"strings"
)

// Deletion failure classes. A *DeletionError matches exactly one of these
// with errors.Is.
var (
	ErrUnloadFailed         = errors.New("unloading launch job failed")
	ErrFileRemoveFailed     = errors.New("removing file failed")
	ErrAutomationFailed     = errors.New("deleting login item failed")
	ErrRegistryDeleteFailed = errors.New("deleting registry value failed")
	ErrInsufficientScope    = errors.New("machine-wide entries need elevated privileges and are not deleted")
	ErrUnsupportedKind      = errors.New("unsupported startup item kind")
	ErrMissingPath          = errors.New("startup item has no path")
)

// DeletionError describes a failed Delete. Output carries whatever the
// external command printed. Unloaded is set when a plist job was unloaded
// but its file could not be removed, which leaves cleanup to the caller.
type DeletionError struct {
	Code     error
	Item     StartupItem
	Output   string
	Unloaded bool
	Err      error
}

func (e *DeletionError) Error() string {
	var b strings.Builder
	b.WriteString(e.Code.Error())
	b.WriteString(" for ")
	b.WriteString(e.Item.String())
	if e.Unloaded {
		b.WriteString(" (launch job was unloaded, file is still on disk)")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	if e.Output != "" {
		b.WriteString(": ")
		b.WriteString(e.Output)
	}
	return b.String()
}

// Unwrap exposes both the failure class and the underlying cause.
func (e *DeletionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Code}
	}
	return []error{e.Code, e.Err}
}

// Partial reports whether some of the deletion took effect.
func (e *DeletionError) Partial() bool { return e.Unloaded }
