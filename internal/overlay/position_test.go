package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"floatdock/internal/config"
)

func TestComputePosition(t *testing.T) {
	retina := &Monitor{Width: 2880, Height: 1800, ScaleFactor: 2.0}
	ball := Size{Width: 60, Height: 60}

	tests := []struct {
		name      string
		monitor   *Monitor
		placement Placement
		want      Position
	}{
		{
			name:      "centered",
			monitor:   retina,
			placement: Placement{Mode: config.PlacementCenter},
			want:      Position{X: 690, Y: 420},
		},
		{
			name:      "empty mode centers",
			monitor:   retina,
			placement: Placement{},
			want:      Position{X: 690, Y: 420},
		},
		{
			name:      "corner with margin",
			monitor:   retina,
			placement: Placement{Mode: config.PlacementCorner, Margin: 80},
			want:      Position{X: 1300, Y: 760},
		},
		{
			name:      "explicit position wins",
			monitor:   retina,
			placement: Placement{Mode: config.PlacementCorner, Margin: 80, X: 50, Y: 50},
			want:      Position{X: 50, Y: 50},
		},
		{
			name:      "explicit position without monitor",
			monitor:   nil,
			placement: Placement{X: 50, Y: 50},
			want:      Position{X: 50, Y: 50},
		},
		{
			name:      "missing monitor falls back",
			monitor:   nil,
			placement: Placement{Mode: config.PlacementCenter},
			want:      DefaultPosition,
		},
		{
			name:      "zero scale falls back",
			monitor:   &Monitor{Width: 1920, Height: 1080},
			placement: Placement{Mode: config.PlacementCenter},
			want:      DefaultPosition,
		},
		{
			name:      "scale factor one",
			monitor:   &Monitor{Width: 1920, Height: 1080, ScaleFactor: 1},
			placement: Placement{Mode: config.PlacementCorner, Margin: 20},
			want:      Position{X: 1840, Y: 1000},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputePosition(tc.monitor, ball, tc.placement)
			assert.InDelta(t, tc.want.X, got.X, 1e-9)
			assert.InDelta(t, tc.want.Y, got.Y, 1e-9)
		})
	}
}

func TestDefaultPosition(t *testing.T) {
	assert.Equal(t, Position{X: 100, Y: 100}, DefaultPosition)
}

func TestPlacementFromConfig(t *testing.T) {
	cfg := config.OverlayConfig{DefaultX: 5, DefaultY: 6, Margin: 7, Placement: config.PlacementCorner}

	assert.Equal(t, Placement{Mode: config.PlacementCorner, Margin: 7, X: 5, Y: 6}, PlacementFromConfig(cfg))
}

func TestMonitor_LogicalSize(t *testing.T) {
	w, h := Monitor{Width: 2880, Height: 1800, ScaleFactor: 2}.LogicalSize()
	assert.Equal(t, 1440.0, w)
	assert.Equal(t, 900.0, h)
}
