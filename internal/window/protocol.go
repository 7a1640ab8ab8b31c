package window

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"floatdock/internal/overlay"
)

// The overlay child speaks a line protocol: the parent writes one command per
// line on the child's stdin, and the child answers each with exactly one
// prefixed line on stdout. Unprefixed output is ignored.
const (
	replyPrefix = "@floatdock "

	replyReady = "ready"
	replyOK    = "ok"
	replyErr   = "err"

	cmdShow        = "show"
	cmdHide        = "hide"
	cmdFocus       = "focus"
	cmdTransparent = "transparent"
	cmdClose       = "close"
)

// OverlayCommand is the name of the subcommand that runs the overlay child
const OverlayCommand = "overlay"

// OverlayArgs returns the child process arguments describing spec
func OverlayArgs(spec overlay.WindowSpec) []string {
	return []string{
		OverlayCommand,
		"--label", spec.Label,
		"--title", spec.Title,
		"--x", formatFloat(spec.X),
		"--y", formatFloat(spec.Y),
		"--width", formatFloat(spec.Width),
		"--height", formatFloat(spec.Height),
		fmt.Sprintf("--always-on-top=%t", spec.AlwaysOnTop),
	}
}

// BindOverlayFlags registers the flags produced by OverlayArgs on fs
func BindOverlayFlags(fs *pflag.FlagSet, spec *overlay.WindowSpec) {
	fs.StringVar(&spec.Label, "label", overlay.Label, "window label")
	fs.StringVar(&spec.Title, "title", "Overlay", "window title")
	fs.Float64Var(&spec.X, "x", overlay.DefaultPosition.X, "logical x position")
	fs.Float64Var(&spec.Y, "y", overlay.DefaultPosition.Y, "logical y position")
	fs.Float64Var(&spec.Width, "width", 60, "logical width")
	fs.Float64Var(&spec.Height, "height", 60, "logical height")
	fs.BoolVar(&spec.AlwaysOnTop, "always-on-top", true, "keep the window above normal windows")
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
