package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/bootwatch/bootwatch/internal/autostart"
	"github.com/bootwatch/bootwatch/internal/backend"
	"github.com/bootwatch/bootwatch/internal/config"
	"github.com/bootwatch/bootwatch/internal/platform"
	"github.com/bootwatch/bootwatch/internal/tui"
)

type enumerator interface {
	All(ctx context.Context) []autostart.StartupItem
}

type deleter interface {
	Delete(ctx context.Context, item autostart.StartupItem) error
}

type pickFunc func(items []autostart.StartupItem) (autostart.StartupItem, bool, error)

// app carries the state shared by every subcommand. Fields left nil are
// filled in by setup; tests set them up front.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configFlag string
	logLevel   string
	logFile    string

	cfg        *config.Config
	configUsed string
	logger     *zap.Logger
	logFileOut *os.File
	plat       platform.Platform
	agg        *autostart.Aggregator
	items      enumerator
	deleter    deleter
	pick       pickFunc
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{in: in, out: out, errOut: errOut}
}

// setup loads configuration and wires the enumeration and deletion stack.
func (a *app) setup(ctx context.Context, explicitConfig bool) error {
	if a.cfg == nil {
		cli := config.CLIOverrides{LogLevel: a.logLevel, LogFile: a.logFile}
		var (
			cfg *config.Config
			err error
		)
		if explicitConfig {
			cfg, err = config.LoadLayered(cli, a.configFlag)
			a.configUsed = a.configFlag
		} else {
			a.configUsed = config.Locate()
			cfg, err = config.LoadLayered(cli, a.configUsed)
		}
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		a.cfg = cfg
	}

	if a.logger == nil {
		logger, file, err := initLogger(a.cfg, a.errOut)
		if err != nil {
			return err
		}
		a.logger = logger
		a.logFileOut = file
	}

	if a.plat == nil {
		a.plat = platform.New()
	}

	runner := backend.NewExecRunner(a.cfg.Exec.Timeout.Duration, a.logger)
	if a.items == nil {
		a.agg = autostart.NewAggregator(a.logger, autostart.DefaultReaders(runner, a.logger)...)
		a.items = a.agg
	}
	if a.deleter == nil {
		a.deleter = autostart.NewDispatcher(runner, backend.OSFiles{}, platform.ConsoleDecoder(a.plat), a.logger)
	}
	if a.pick == nil {
		a.pick = func(items []autostart.StartupItem) (autostart.StartupItem, bool, error) {
			return tui.Pick(items)
		}
	}

	if ce := a.logger.Check(zap.DebugLevel, "BootWatch starting"); ce != nil {
		fields := []zap.Field{
			zap.String("version", version),
			zap.String("platform", a.plat.Name()),
			zap.Bool("elevated", a.plat.IsElevated()),
			zap.String("config", a.configUsed),
		}
		if host, err := platform.Describe(ctx); err == nil {
			fields = append(fields,
				zap.String("hostname", host.Hostname),
				zap.String("os_version", host.PlatformVersion))
		}
		ce.Write(fields...)
	}
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if a.logFileOut != nil {
		_ = a.logFileOut.Close()
		a.logFileOut = nil
	}
}

// deleteItem confirms with the user unless told not to, dispatches the
// deletion and reports the outcome.
func (a *app) deleteItem(ctx context.Context, item autostart.StartupItem, yes bool) error {
	if a.cfg.Delete.Confirm && !yes {
		ok, err := tui.Confirm(a.in, a.out, item)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(a.out, "Aborted, nothing deleted.")
			return nil
		}
	}

	err := a.deleter.Delete(ctx, item)
	if err == nil {
		a.logger.Info("Startup item deleted",
			zap.String("label", item.Label()),
			zap.String("kind", string(item.Kind())))
		fmt.Fprintln(a.out, tui.Success("Deleted "+tui.Describe(item)))
		return nil
	}

	var de *autostart.DeletionError
	if errors.As(err, &de) {
		switch {
		case de.Partial():
			path, _ := item.Path()
			fmt.Fprintln(a.errOut, tui.Warning(
				fmt.Sprintf("%s was unloaded but %s is still on disk; remove it by hand to keep it from loading at next login", item.Label(), path)))
		case errors.Is(err, autostart.ErrInsufficientScope):
			fmt.Fprintln(a.errOut, tui.Warning(
				fmt.Sprintf("%s is registered for every user; remove it from an elevated prompt", item.Label())))
		}
	}
	return err
}
