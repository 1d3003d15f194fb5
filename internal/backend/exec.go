package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ExecRunner runs commands with os/exec, each under its own timeout.
type ExecRunner struct {
	timeout time.Duration
	logger  *zap.Logger
}

// NewExecRunner creates a Runner. A zero timeout disables the per-command limit.
func NewExecRunner(timeout time.Duration, logger *zap.Logger) *ExecRunner {
	return &ExecRunner{
		timeout: timeout,
		logger:  logger.Named("exec"),
	}
}

// Run executes name with args and captures both output streams.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (Result, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	r.logger.Debug("Command finished",
		zap.String("cmd", name+" "+strings.Join(args, " ")),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err))

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("running %s: %w", name, err)
	}
	return res, nil
}

// OSFiles removes files from the local filesystem.
type OSFiles struct{}

// Remove deletes the file at path.
func (OSFiles) Remove(path string) error {
	return os.Remove(path)
}
