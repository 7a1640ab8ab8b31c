//go:build !windows

package main

import (
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
)

// foregroundWindowTitle is not supported on this platform
func foregroundWindowTitle() (string, error) {
	return "", fmt.Errorf("foreground window lookup not supported on this platform")
}

// transparentWindowOptions lets the desktop show through the overlay's web view
func transparentWindowOptions(opts *options.App) {
	opts.Mac = &mac.Options{
		TitleBar:             mac.TitleBarHidden(),
		WebviewIsTransparent: true,
		WindowIsTranslucent:  true,
	}
	opts.Linux = &linux.Options{
		WindowIsTranslucent: true,
	}
}
