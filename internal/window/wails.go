package window

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"floatdock/internal/overlay"
	"floatdock/internal/platform"
)

// MainWindow is the Wails-managed main application window
type MainWindow struct {
	ctx context.Context
}

// NewMainWindow wraps the runtime context handed to OnStartup
func NewMainWindow(ctx context.Context) *MainWindow {
	return &MainWindow{ctx: ctx}
}

func (w *MainWindow) Show() error {
	runtime.WindowShow(w.ctx)
	return nil
}

func (w *MainWindow) Hide() error {
	runtime.WindowHide(w.ctx)
	return nil
}

func (w *MainWindow) Focus() error {
	runtime.WindowUnminimise(w.ctx)
	runtime.WindowShow(w.ctx)
	return nil
}

// Close quits the application
func (w *MainWindow) Close() error {
	runtime.Quit(w.ctx)
	return nil
}

// Screens queries monitor geometry through the Wails runtime
type Screens struct {
	ctx context.Context
}

// NewScreens wraps the runtime context handed to OnStartup
func NewScreens(ctx context.Context) *Screens {
	return &Screens{ctx: ctx}
}

// PrimaryMonitor returns nil when the runtime reports no primary screen
func (s *Screens) PrimaryMonitor() (*overlay.Monitor, error) {
	screens, err := runtime.ScreenGetAll(s.ctx)
	if err != nil {
		return nil, err
	}
	for _, screen := range screens {
		if screen.IsPrimary {
			return monitorFrom(screen.Size.Width, screen.Size.Height, screen.PhysicalSize.Width, screen.PhysicalSize.Height), nil
		}
	}
	return nil, nil
}

// monitorFrom derives the scale factor from a screen's logical and physical sizes
func monitorFrom(logicalW, logicalH, physicalW, physicalH int) *overlay.Monitor {
	if physicalW <= 0 || physicalH <= 0 {
		if logicalW <= 0 || logicalH <= 0 {
			return nil
		}
		return &overlay.Monitor{Width: logicalW, Height: logicalH, ScaleFactor: 1}
	}

	scale := 1.0
	if logicalW > 0 {
		scale = float64(physicalW) / float64(logicalW)
	}
	return &overlay.Monitor{Width: physicalW, Height: physicalH, ScaleFactor: scale}
}

// RuntimeTarget drives the overlay process's own Wails window
type RuntimeTarget struct {
	ctx   context.Context
	title string
}

// NewRuntimeTarget wraps the overlay process's runtime context
func NewRuntimeTarget(ctx context.Context, title string) *RuntimeTarget {
	return &RuntimeTarget{ctx: ctx, title: title}
}

func (t *RuntimeTarget) Show() error {
	runtime.WindowShow(t.ctx)
	return nil
}

func (t *RuntimeTarget) Hide() error {
	runtime.WindowHide(t.ctx)
	return nil
}

func (t *RuntimeTarget) Focus() error {
	runtime.WindowUnminimise(t.ctx)
	runtime.WindowShow(t.ctx)
	return nil
}

func (t *RuntimeTarget) ApplyTransparency() error {
	return platform.ApplyTransparency(t.title)
}

func (t *RuntimeTarget) Close() error {
	runtime.Quit(t.ctx)
	return nil
}

var (
	_ overlay.Window = (*MainWindow)(nil)
	_ ScreenSource   = (*Screens)(nil)
	_ Target         = (*RuntimeTarget)(nil)
)
