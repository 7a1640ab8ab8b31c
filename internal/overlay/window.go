package overlay

// Window is a native window owned by the host window system
type Window interface {
	Show() error
	Hide() error
	Focus() error
	Close() error
}

// WindowSpec describes the overlay window to construct
type WindowSpec struct {
	Label       string  `json:"label"`
	Title       string  `json:"title"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	AlwaysOnTop bool    `json:"always_on_top"`
}

// Host is the window system the overlay is created in
type Host interface {
	// PrimaryMonitor returns nil when no monitor information is available
	PrimaryMonitor() (*Monitor, error)
	CreateWindow(spec WindowSpec) (Window, error)
}

// Observer is told when the overlay window comes into or goes out of existence
type Observer interface {
	WindowCreated(w Window)
	WindowClosed(w Window)
}
