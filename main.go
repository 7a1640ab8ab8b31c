package main

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"floatdock/internal/config"
	"floatdock/internal/instance"
	"floatdock/internal/logging"
)

//go:embed all:frontend/dist
var assets embed.FS

// exitAlreadyRunning is the status of a second instance
const exitAlreadyRunning = 1

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCommand()
	err := root.Execute()
	switch {
	case err == nil:
		return 0
	case errors.Is(err, instance.ErrInstanceAlreadyRunning):
		return exitAlreadyRunning
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "floatdock",
		Short:         "Desktop shell with a floating overlay widget",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd.Context())
		},
	}
	root.AddCommand(newOverlayCommand())
	return root
}

// setup loads the environment, configuration and logger shared by both processes
func setup() (*config.Service, *logrus.Logger, func(), error) {
	env, dotenvFound, err := config.LoadEnv()
	if err != nil {
		return nil, nil, nil, err
	}

	configSvc, err := config.New(env.ConfigDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	cfg := configSvc.Get()
	logger, closer, err := logging.New(logging.Options{
		Level:  env.LogLevel,
		Format: env.LogFormat,
		File:   filepath.Join(configSvc.Dir(), "logs", instance.LockName(cfg.Name)+".log"),
	})
	if err != nil {
		return nil, nil, nil, err
	}
	if dotenvFound {
		logger.Debug("Loaded .env file")
	}
	return configSvc, logger, func() { _ = closer.Close() }, nil
}

func runShell(ctx context.Context) error {
	configSvc, logger, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	cfg := configSvc.Get()
	log := logging.Component(logger, "app")
	log.WithField("name", cfg.Name).Info("Application starting")

	guard, err := instance.Acquire(cfg.Name)
	if errors.Is(err, instance.ErrInstanceAlreadyRunning) {
		log.Warn("Another instance is already running, exiting")
		return err
	}
	if err != nil {
		return fmt.Errorf("single-instance check: %w", err)
	}
	defer guard.Release()

	logging.Component(logger, "instance").WithField("path", guard.Path()).Debug("Instance lock acquired")

	app := NewApp(configSvc, logger, guard)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			app.Quit()
		case <-done:
		}
	}()

	win := cfg.Window
	err = wails.Run(&options.App{
		Title:         cfg.Name,
		Width:         win.Width,
		Height:        win.Height,
		MinWidth:      win.MinWidth,
		MinHeight:     win.MinHeight,
		MaxWidth:      win.MaxWidth,
		MaxHeight:     win.MaxHeight,
		DisableResize: !win.Resizable,
		AlwaysOnTop:   win.AlwaysOnTop,
		StartHidden:   win.StartHidden,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Logger:     &logging.WailsLogger{Entry: logging.Component(logger, "wails")},
		LogLevel:   logging.WailsLevel(logger.GetLevel()),
		OnStartup:  app.OnStartup,
		OnShutdown: app.OnShutdown,
		Debug: options.Debug{
			OpenInspectorOnStartup: cfg.Dev.OpenDevTools,
		},
		Bind: []interface{}{app},
	})
	if err != nil {
		return fmt.Errorf("error starting application: %w", err)
	}
	return nil
}
