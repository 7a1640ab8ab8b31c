package overlay

// TransparencyHook makes a freshly created window visually transparent. It
// runs once per window, before the first show. Failures are logged by the
// caller and never abort window creation.
type TransparencyHook interface {
	Apply(w Window) error
}

// NoopTransparency is used where the platform has no native support; any
// transparency comes from the window content itself.
type NoopTransparency struct{}

func (NoopTransparency) Apply(Window) error { return nil }
