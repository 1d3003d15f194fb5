// Package backend wraps the process and filesystem calls that reach the
// startup backing stores. Readers and the deletion dispatcher only talk to
// these interfaces, so their behaviour can be checked against mocks.
package backend

import (
	"bytes"
	"context"
)

//go:generate mockgen -destination=mocks/mock_backend.go -package=mocks -source=backend.go Runner,Files

// Result is the captured outcome of one external command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (r Result) Success() bool { return r.ExitCode == 0 }

// Combined returns stdout followed by stderr, trimmed of surrounding whitespace.
func (r Result) Combined() []byte {
	out := make([]byte, 0, len(r.Stdout)+len(r.Stderr)+1)
	out = append(out, bytes.TrimSpace(r.Stdout)...)
	if errOut := bytes.TrimSpace(r.Stderr); len(errOut) > 0 {
		if len(out) > 0 {
			out = append(out, '\n')
		}
		out = append(out, errOut...)
	}
	return out
}

// Runner executes platform commands (osascript, launchctl, reg).
// A non-zero exit status is reported through Result.ExitCode with a nil
// error; the error is reserved for commands that could not run at all.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (Result, error)
}

// Files removes files that back startup entries.
type Files interface {
	Remove(path string) error
}
