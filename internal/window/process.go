package window

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"

	"floatdock/internal/overlay"
)

// ScreenSource reports the primary monitor's geometry
type ScreenSource interface {
	PrimaryMonitor() (*overlay.Monitor, error)
}

// ProcessHost creates overlay windows by starting the overlay subcommand of
// Executable as a child process, one process per window.
type ProcessHost struct {
	Executable string
	Screens    ScreenSource
	Log        *logrus.Entry
}

// NewProcessHost returns a host that re-executes the running binary
func NewProcessHost(screens ScreenSource, log *logrus.Entry) (*ProcessHost, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to locate executable: %w", err)
	}
	return &ProcessHost{Executable: exe, Screens: screens, Log: log}, nil
}

// PrimaryMonitor implements overlay.Host
func (h *ProcessHost) PrimaryMonitor() (*overlay.Monitor, error) {
	if h.Screens == nil {
		return nil, nil
	}
	return h.Screens.PrimaryMonitor()
}

// CreateWindow starts the overlay process and waits until its window exists
func (h *ProcessHost) CreateWindow(spec overlay.WindowSpec) (overlay.Window, error) {
	cmd := exec.Command(h.Executable, OverlayArgs(spec)...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start overlay process: %w", err)
	}

	log := h.Log
	if log != nil {
		log = log.WithField("pid", cmd.Process.Pid)
		log.Debug("Overlay process started")
	}

	proc := process{
		wait: cmd.Wait,
		kill: func() error {
			if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
				return err
			}
			return nil
		},
	}

	remote, err := newRemote(stdout, stdin, proc, log)
	if err != nil {
		_ = proc.kill()
		_ = cmd.Wait()
		return nil, fmt.Errorf("overlay process did not become ready: %w", err)
	}
	return remote, nil
}

var _ overlay.Host = (*ProcessHost)(nil)
