package overlay

import "floatdock/internal/config"

// DefaultPosition is used when no monitor geometry is available
var DefaultPosition = Position{X: 100, Y: 100}

// Monitor is the physical geometry of a display
type Monitor struct {
	Width       int     `json:"width"`  // device pixels
	Height      int     `json:"height"` // device pixels
	ScaleFactor float64 `json:"scale_factor"`
}

// LogicalSize converts the physical size into logical coordinates
func (m Monitor) LogicalSize() (float64, float64) {
	return float64(m.Width) / m.ScaleFactor, float64(m.Height) / m.ScaleFactor
}

func (m *Monitor) usable() bool {
	return m != nil && m.Width > 0 && m.Height > 0 && m.ScaleFactor > 0
}

// Position is a logical window coordinate
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a logical window size
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Placement selects where a new overlay window goes
type Placement struct {
	Mode   string // config.PlacementCenter or config.PlacementCorner
	Margin float64
	// Explicit coordinates win over Mode unless both are zero.
	X, Y float64
}

// PlacementFromConfig extracts the placement policy from overlay settings
func PlacementFromConfig(cfg config.OverlayConfig) Placement {
	return Placement{
		Mode:   cfg.Placement,
		Margin: cfg.Margin,
		X:      cfg.DefaultX,
		Y:      cfg.DefaultY,
	}
}

// ComputePosition returns the first-run position of the overlay. A nil or
// degenerate monitor yields DefaultPosition.
func ComputePosition(monitor *Monitor, size Size, p Placement) Position {
	if p.X != 0 || p.Y != 0 {
		return Position{X: p.X, Y: p.Y}
	}
	if !monitor.usable() {
		return DefaultPosition
	}

	screenW, screenH := monitor.LogicalSize()
	if p.Mode == config.PlacementCorner {
		return Position{
			X: screenW - size.Width - p.Margin,
			Y: screenH - size.Height - p.Margin,
		}
	}
	return Position{
		X: (screenW - size.Width) / 2,
		Y: (screenH - size.Height) / 2,
	}
}
