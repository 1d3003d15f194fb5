package autostart

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// RunKeyPath is the auto-start key read under both hives.
const RunKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

// Hive names a registry root holding a Run key.
type Hive string

const (
	HiveCurrentUser  Hive = "HKCU"
	HiveLocalMachine Hive = "HKLM"
)

// Scope maps the hive to the scope of the entries stored under it.
func (h Hive) Scope() Scope {
	if h == HiveLocalMachine {
		return ScopeSystem
	}
	return ScopeUser
}

// ValueType is the registry type of a Run value, reduced to what the
// reader cares about.
type ValueType int

const (
	ValueOther ValueType = iota
	ValueString
	ValueExpandString
)

// IsString reports whether values of this type carry a command line.
func (t ValueType) IsString() bool {
	return t == ValueString || t == ValueExpandString
}

// RunValue is one value read from a Run key. Err is set when the value
// exists but could not be read.
type RunValue struct {
	Name string
	Type ValueType
	Data string
	Err  error
}

// ErrKeyNotFound is returned by a RunKeyStore when the hive has no Run key.
var ErrKeyNotFound = errors.New("registry key not found")

// RunKeyStore reads the Run key of a hive.
type RunKeyStore interface {
	ReadRunKey(hive Hive) ([]RunValue, error)
}

// RunKeyReader lists Run key values of the current user and the machine.
type RunKeyReader struct {
	store  RunKeyStore
	hives  []Hive
	logger *zap.Logger
}

// NewRunKeyReader creates a reader over HKCU then HKLM.
func NewRunKeyReader(store RunKeyStore, logger *zap.Logger) *RunKeyReader {
	return &RunKeyReader{
		store:  store,
		hives:  []Hive{HiveCurrentUser, HiveLocalMachine},
		logger: logger.Named("runkey"),
	}
}

// Name returns the reader identifier.
func (r *RunKeyReader) Name() string { return "registry Run keys" }

// Read enumerates string values of each hive's Run key. Missing keys and
// values of other types are skipped. The reader only fails when no hive
// could be opened for a reason other than absence.
func (r *RunKeyReader) Read(ctx context.Context) ([]StartupItem, error) {
	var (
		items  []StartupItem
		failed []error
	)
	for _, hive := range r.hives {
		if err := ctx.Err(); err != nil {
			return nil, &SourceUnavailableError{Source: r.Name(), Err: err}
		}
		values, err := r.store.ReadRunKey(hive)
		if errors.Is(err, ErrKeyNotFound) {
			r.logger.Debug("Run key not present", zap.String("hive", string(hive)))
			continue
		}
		if err != nil {
			r.logger.Warn("Cannot open Run key", zap.String("hive", string(hive)), zap.Error(err))
			failed = append(failed, fmt.Errorf("%s: %w", hive, err))
			continue
		}
		for _, v := range values {
			if v.Err != nil || !v.Type.IsString() {
				r.logger.Debug("Skipping Run value",
					zap.String("hive", string(hive)),
					zap.String("name", v.Name),
					zap.Error(v.Err))
				continue
			}
			items = append(items, NewRegistryRun(hive, v.Name, v.Data))
		}
	}

	if len(failed) == len(r.hives) {
		return nil, &SourceUnavailableError{Source: r.Name(), Err: errors.Join(failed...)}
	}
	return items, nil
}
