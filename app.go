package main

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"floatdock/internal/config"
	"floatdock/internal/instance"
	"floatdock/internal/logging"
	"floatdock/internal/overlay"
	"floatdock/internal/platform"
	"floatdock/internal/window"
)

var (
	errOverlayUnavailable = errors.New("overlay service not available")
	errOverlayDisabled    = errors.New("overlay is disabled in configuration")
)

// App struct
type App struct {
	ctx     context.Context
	config  *config.Service
	logger  *logrus.Logger
	log     *logrus.Entry
	guard   *instance.Guard
	windows *window.Registry

	// mu serializes overlay commands, which the runtime delivers on separate goroutines
	mu      sync.Mutex
	overlay *overlay.Service
}

// NewApp creates a new App application struct
func NewApp(configSvc *config.Service, logger *logrus.Logger, guard *instance.Guard) *App {
	return &App{
		config:  configSvc,
		logger:  logger,
		log:     logging.Component(logger, "app"),
		guard:   guard,
		windows: window.NewRegistry(),
	}
}

// OnStartup is called when the app starts up
func (a *App) OnStartup(ctx context.Context) {
	a.mu.Lock()
	a.ctx = ctx
	a.mu.Unlock()

	var host overlay.Host
	processHost, err := window.NewProcessHost(window.NewScreens(ctx), logging.Component(a.logger, "window"))
	if err != nil {
		a.log.WithError(err).Error("Failed to initialize overlay host")
	} else {
		host = processHost
	}
	a.attach(window.NewMainWindow(ctx), host)
}

// attach registers the main window and builds the overlay service on host
func (a *App) attach(mainWindow overlay.Window, host overlay.Host) {
	a.windows.Set(window.RoleMain, mainWindow)
	if host == nil {
		return
	}

	cfg := a.config.Get()
	svc, err := overlay.New(cfg.Overlay, host, overlay.Options{
		Title:    overlayTitle(cfg),
		Hook:     platform.NewTransparencyHook(logging.Component(a.logger, "platform")),
		Observer: a.windows,
		Log:      logging.Component(a.logger, "overlay"),
	})
	if err != nil {
		a.log.WithError(err).Error("Failed to initialize overlay")
		return
	}

	a.mu.Lock()
	a.overlay = svc
	a.mu.Unlock()
}

// OnShutdown is called when the app is shutting down
func (a *App) OnShutdown(ctx context.Context) {
	if err := a.CloseOverlay(); err != nil {
		a.log.WithError(err).Warn("Failed to close overlay on shutdown")
	}
	if err := a.guard.Release(); err != nil {
		a.log.WithError(err).Warn("Failed to release instance lock")
	}
	a.log.Info("Application stopped")
}

// Quit asks the runtime to shut down, or releases the lock if no window is up yet
func (a *App) Quit() {
	a.mu.Lock()
	ctx := a.ctx
	a.mu.Unlock()

	a.log.Info("Shutdown requested")
	if ctx != nil {
		runtime.Quit(ctx)
		return
	}
	_ = a.guard.Release()
}

// SetOverlayVisible shows or hides the floating overlay, creating it on first show.
// Hiding never fails for lack of a window.
func (a *App) SetOverlayVisible(visible bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if visible {
		if err := a.overlayReady(); err != nil {
			return err
		}
	}
	if a.overlay == nil {
		return nil
	}
	return a.overlay.SetVisible(visible)
}

// CloseOverlay destroys the overlay window if it exists
func (a *App) CloseOverlay() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.overlay == nil {
		return nil
	}
	return a.overlay.Close()
}

// IsOverlayVisible reports whether the overlay is currently shown
func (a *App) IsOverlayVisible() (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.overlay == nil {
		return false, nil
	}
	return a.overlay.IsVisible(), nil
}

// IsOverlayFocused reports whether the overlay window has keyboard focus
func (a *App) IsOverlayFocused() bool {
	title, err := foregroundWindowTitle()
	if err != nil {
		return false
	}
	return title == overlayTitle(a.config.Get())
}

// ShowMainWindow shows and focuses the main window
func (a *App) ShowMainWindow() error {
	return a.windows.ShowAndFocus(window.RoleMain)
}

// GetAppConfig returns the loaded application configuration
func (a *App) GetAppConfig() config.Config {
	return a.config.Get()
}

func (a *App) overlayReady() error {
	if a.overlay == nil {
		return errOverlayUnavailable
	}
	if !a.config.Get().Overlay.Enabled {
		return errOverlayDisabled
	}
	return nil
}

func overlayTitle(cfg config.Config) string {
	return cfg.Name + " Overlay"
}
