package overlay

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"floatdock/internal/config"
)

// Label identifies the overlay window to the host
const Label = "overlay"

// Options configures optional collaborators of the overlay service
type Options struct {
	Title    string
	Hook     TransparencyHook
	Observer Observer
	Log      *logrus.Entry
}

// Service manages the floating overlay window's existence and visibility.
//
// Service is not safe for concurrent use. Window toolkits expect these calls
// on one thread, and SetVisible(true) checks for an existing window before
// creating one; callers that dispatch commands from several goroutines must
// serialize them.
type Service struct {
	cfg      config.OverlayConfig
	host     Host
	title    string
	hook     TransparencyHook
	observer Observer
	log      *logrus.Entry

	window Window
	state  State
}

// New creates a new overlay service. No window is created until the first SetVisible(true).
func New(cfg config.OverlayConfig, host Host, opts Options) (*Service, error) {
	if host == nil {
		return nil, errors.New("overlay: host window system is required")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("overlay: size must be positive, got %vx%v", cfg.Width, cfg.Height)
	}

	s := &Service{
		cfg:      cfg,
		host:     host,
		title:    opts.Title,
		hook:     opts.Hook,
		observer: opts.Observer,
		log:      opts.Log,
		state:    Absent,
	}
	if s.title == "" {
		s.title = "Overlay"
	}
	if s.hook == nil {
		s.hook = NoopTransparency{}
	}
	if s.log == nil {
		s.log = logrus.NewEntry(logrus.StandardLogger())
	}
	return s, nil
}

// State returns the current lifecycle state
func (s *Service) State() State {
	return s.state
}

// IsVisible reports whether the overlay is currently shown
func (s *Service) IsVisible() bool {
	return s.state == Visible
}

// SetVisible shows or hides the overlay, creating the window on first show
func (s *Service) SetVisible(show bool) error {
	s.log.WithFields(logrus.Fields{"show": show, "state": s.state}).Info("Set overlay visibility")

	if !show {
		if s.state != Visible {
			return nil
		}
		if err := s.window.Hide(); err != nil {
			return opError("hide", err)
		}
		s.state = Hidden
		return nil
	}

	switch s.state {
	case Visible:
		return nil
	case Hidden:
		return s.reveal()
	default:
		return s.create()
	}
}

// Close destroys the overlay window if one exists
func (s *Service) Close() error {
	if s.window == nil {
		return nil
	}

	s.log.Info("Close overlay window")
	w := s.window
	if err := w.Close(); err != nil {
		return opError("close", err)
	}

	s.window = nil
	s.state = Absent
	if s.observer != nil {
		s.observer.WindowClosed(w)
	}
	return nil
}

func (s *Service) create() error {
	pos := s.firstRunPosition()

	w, err := s.host.CreateWindow(WindowSpec{
		Label:       Label,
		Title:       s.title,
		Width:       s.cfg.Width,
		Height:      s.cfg.Height,
		X:           pos.X,
		Y:           pos.Y,
		AlwaysOnTop: s.cfg.AlwaysOnTop,
	})
	if err != nil {
		return opError("create", err)
	}

	// From here on the window exists, so failures leave us Hidden rather than Absent.
	s.window = w
	s.state = Hidden
	if s.observer != nil {
		s.observer.WindowCreated(w)
	}

	s.applyTransparency(w)

	if err := s.reveal(); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{"x": pos.X, "y": pos.Y}).Info("Overlay window created")
	return nil
}

// reveal shows the existing window and gives it input focus
func (s *Service) reveal() error {
	if err := s.window.Show(); err != nil {
		return opError("show", err)
	}
	s.state = Visible

	if err := s.window.Focus(); err != nil {
		return opError("focus", err)
	}
	return nil
}

func (s *Service) firstRunPosition() Position {
	size := Size{Width: s.cfg.Width, Height: s.cfg.Height}
	placement := PlacementFromConfig(s.cfg)

	if s.cfg.HasExplicitPosition() {
		return ComputePosition(nil, size, placement)
	}

	monitor, err := s.host.PrimaryMonitor()
	if err == nil && !monitor.usable() {
		err = ErrMonitorUnavailable
	}
	if err != nil {
		s.log.WithError(err).Warn("No monitor geometry, using default overlay position")
		return ComputePosition(nil, size, placement)
	}

	pos := ComputePosition(monitor, size, placement)
	logicalW, logicalH := monitor.LogicalSize()
	s.log.WithFields(logrus.Fields{
		"physical":  fmt.Sprintf("%dx%d", monitor.Width, monitor.Height),
		"scale":     monitor.ScaleFactor,
		"logical":   fmt.Sprintf("%vx%v", logicalW, logicalH),
		"placement": placement.Mode,
		"x":         pos.X,
		"y":         pos.Y,
	}).Info("Computed overlay position")
	return pos
}

// applyTransparency runs the hook and absorbs any failure, panics included
func (s *Service) applyTransparency(w Window) {
	defer func() {
		if r := recover(); r != nil {
			s.log.WithField("panic", r).Error("Transparency hook panicked")
		}
	}()

	if err := s.hook.Apply(w); err != nil {
		s.log.WithError(err).Warn("Failed to make overlay window transparent")
	}
}
