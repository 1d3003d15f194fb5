package autostart

import (
	"context"
	"fmt"
)

// Reader enumerates the startup entries of one backing store.
type Reader interface {
	// Name returns a short description of the source, used in logs.
	Name() string

	// Read returns the source's entries. Entries that cannot be read are
	// skipped; a non-nil error means the whole source was unavailable and
	// is always a *SourceUnavailableError.
	Read(ctx context.Context) ([]StartupItem, error)
}

// SourceUnavailableError reports that a reader's backing store could not be
// queried at all. The aggregator logs it and carries on with other readers.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("startup source %s unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }
