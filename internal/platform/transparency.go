// Package platform holds the per-OS native window calls. The implementation
// is chosen by build tags; Supported reports whether this build has one.
package platform

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"floatdock/internal/overlay"
)

// NativeWindow is a window that can run ApplyTransparency inside the process that owns it
type NativeWindow interface {
	ApplyTransparency() error
}

// NewTransparencyHook returns the overlay transparency hook for this platform
func NewTransparencyHook(log *logrus.Entry) overlay.TransparencyHook {
	if !Supported {
		return overlay.NoopTransparency{}
	}
	return &nativeHook{log: log}
}

type nativeHook struct {
	log *logrus.Entry
}

func (h *nativeHook) Apply(w overlay.Window) error {
	nw, ok := w.(NativeWindow)
	if !ok {
		return fmt.Errorf("window %T has no native handle", w)
	}
	if err := nw.ApplyTransparency(); err != nil {
		return err
	}
	if h.log != nil {
		h.log.Debug("Overlay window set to transparent")
	}
	return nil
}
