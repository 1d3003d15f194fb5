package autostart

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bootwatch/bootwatch/internal/backend"
)

// Dispatcher removes startup items from the backing store named by their
// kind. It never inspects labels or paths to decide where an item lives.
type Dispatcher struct {
	runner backend.Runner
	files  backend.Files
	decode func([]byte) string
	logger *zap.Logger
}

// NewDispatcher creates a dispatcher. decode converts output of the
// registry tool from the console encoding; nil means UTF-8.
func NewDispatcher(runner backend.Runner, files backend.Files, decode func([]byte) string, logger *zap.Logger) *Dispatcher {
	if decode == nil {
		decode = func(b []byte) string { return string(b) }
	}
	return &Dispatcher{
		runner: runner,
		files:  files,
		decode: decode,
		logger: logger.Named("dispatcher"),
	}
}

// Delete removes item. Failures are returned as *DeletionError and are
// never retried.
func (d *Dispatcher) Delete(ctx context.Context, item StartupItem) error {
	d.logger.Info("Deleting startup item",
		zap.String("kind", string(item.Kind())),
		zap.String("label", item.Label()))

	var err error
	switch item.Kind() {
	case KindPlistAgent:
		err = d.deletePlist(ctx, item)
	case KindLoginItem:
		err = d.deleteLoginItem(ctx, item)
	case KindRegistryRun:
		err = d.deleteRunValue(ctx, item)
	case KindStartupFolder:
		err = d.removeFile(item, false)
	default:
		err = &DeletionError{Code: ErrUnsupportedKind, Item: item}
	}

	if err != nil {
		d.logger.Warn("Deletion failed", zap.String("item", item.String()), zap.Error(err))
		return err
	}
	d.logger.Info("Deleted startup item", zap.String("item", item.String()))
	return nil
}

// deletePlist unloads the launch job, then removes its file. The file is
// left alone when the unload fails.
func (d *Dispatcher) deletePlist(ctx context.Context, item StartupItem) error {
	path, ok := item.Path()
	if !ok {
		return &DeletionError{Code: ErrMissingPath, Item: item}
	}

	res, err := d.runner.Run(ctx, "launchctl", "unload", path)
	if err != nil || !res.Success() {
		return &DeletionError{
			Code:   ErrUnloadFailed,
			Item:   item,
			Output: string(res.Combined()),
			Err:    exitError("launchctl", res, err),
		}
	}
	return d.removeFile(item, true)
}

func (d *Dispatcher) deleteLoginItem(ctx context.Context, item StartupItem) error {
	script := fmt.Sprintf(deleteLoginItemScript, appleScriptString(item.Label()))
	res, err := d.runner.Run(ctx, "osascript", "-e", script)
	if err != nil || !res.Success() {
		return &DeletionError{
			Code:   ErrAutomationFailed,
			Item:   item,
			Output: string(res.Combined()),
			Err:    exitError("osascript", res, err),
		}
	}
	return nil
}

// deleteRunValue deletes the value named by the item's label from the
// current user's Run key. Machine-wide values are refused.
func (d *Dispatcher) deleteRunValue(ctx context.Context, item StartupItem) error {
	if item.Scope() != ScopeUser {
		return &DeletionError{Code: ErrInsufficientScope, Item: item}
	}

	key := string(HiveCurrentUser) + `\` + RunKeyPath
	args := []string{"delete", key, "/v", item.Label(), "/f"}
	if item.Label() == "" {
		// The unnamed default value is addressed with /ve.
		args = []string{"delete", key, "/ve", "/f"}
	}
	res, err := d.runner.Run(ctx, "reg", args...)
	if err != nil || !res.Success() {
		return &DeletionError{
			Code:   ErrRegistryDeleteFailed,
			Item:   item,
			Output: d.decode(res.Combined()),
			Err:    exitError("reg", res, err),
		}
	}
	return nil
}

func (d *Dispatcher) removeFile(item StartupItem, unloaded bool) error {
	path, ok := item.Path()
	if !ok {
		return &DeletionError{Code: ErrMissingPath, Item: item}
	}
	if err := d.files.Remove(path); err != nil {
		return &DeletionError{
			Code:     ErrFileRemoveFailed,
			Item:     item,
			Unloaded: unloaded,
			Err:      err,
		}
	}
	return nil
}

func exitError(name string, res backend.Result, err error) error {
	if err != nil {
		return err
	}
	return fmt.Errorf("%s exited with status %d", name, res.ExitCode)
}
