package window

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floatdock/internal/overlay"
)

func TestOverlayArgs_RoundTrip(t *testing.T) {
	tests := []overlay.WindowSpec{
		{Label: "overlay", Title: "Floatdock Overlay", Width: 60, Height: 60, X: 690, Y: 420, AlwaysOnTop: true},
		{Label: "overlay", Title: "with spaces", Width: 120.5, Height: 80.25, X: 12.75, Y: 0, AlwaysOnTop: false},
	}

	for _, spec := range tests {
		t.Run(spec.Title, func(t *testing.T) {
			args := OverlayArgs(spec)
			require.Equal(t, OverlayCommand, args[0])

			var got overlay.WindowSpec
			fs := pflag.NewFlagSet(OverlayCommand, pflag.ContinueOnError)
			BindOverlayFlags(fs, &got)
			require.NoError(t, fs.Parse(args[1:]))

			assert.Equal(t, spec, got)
		})
	}
}

func TestBindOverlayFlags_Defaults(t *testing.T) {
	var got overlay.WindowSpec
	fs := pflag.NewFlagSet(OverlayCommand, pflag.ContinueOnError)
	BindOverlayFlags(fs, &got)
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, overlay.Label, got.Label)
	assert.Equal(t, overlay.DefaultPosition.X, got.X)
	assert.Equal(t, overlay.DefaultPosition.Y, got.Y)
	assert.True(t, got.AlwaysOnTop)
}
