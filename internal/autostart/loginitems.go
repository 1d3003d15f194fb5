package autostart

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/bootwatch/bootwatch/internal/backend"
)

// LoginItemReader lists login items through System Events.
type LoginItemReader struct {
	runner backend.Runner
	logger *zap.Logger
}

// NewLoginItemReader creates a reader that queries login items with osascript.
func NewLoginItemReader(runner backend.Runner, logger *zap.Logger) *LoginItemReader {
	return &LoginItemReader{
		runner: runner,
		logger: logger.Named("loginitems"),
	}
}

// Name returns the reader identifier.
func (r *LoginItemReader) Name() string { return "login items" }

// Read asks System Events for every login item name.
func (r *LoginItemReader) Read(ctx context.Context) ([]StartupItem, error) {
	res, err := r.runner.Run(ctx, "osascript", "-e", listLoginItemsScript)
	if err != nil {
		return nil, &SourceUnavailableError{Source: r.Name(), Err: err}
	}
	if !res.Success() {
		return nil, &SourceUnavailableError{
			Source: r.Name(),
			Err:    fmt.Errorf("osascript exited with status %d: %s", res.ExitCode, res.Combined()),
		}
	}

	items := parseLoginItems(string(res.Stdout))
	r.logger.Debug("Read login items", zap.Int("count", len(items)))
	return items, nil
}

// parseLoginItems splits the AppleScript list rendering "a, b, c".
func parseLoginItems(out string) []StartupItem {
	out = strings.TrimRight(out, "\r\n")
	var items []StartupItem
	for _, name := range strings.Split(out, ", ") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		items = append(items, NewLoginItem(name))
	}
	return items
}
