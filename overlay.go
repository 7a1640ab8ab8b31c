package main

import (
	"context"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"floatdock/internal/logging"
	"floatdock/internal/overlay"
	"floatdock/internal/window"
)

// newOverlayCommand runs the overlay window process driven by the shell over stdin/stdout
func newOverlayCommand() *cobra.Command {
	var spec overlay.WindowSpec
	cmd := &cobra.Command{
		Use:    window.OverlayCommand,
		Short:  "Run the floating overlay window (started by the shell)",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runOverlay(spec)
		},
	}
	window.BindOverlayFlags(cmd.Flags(), &spec)
	return cmd
}

func runOverlay(spec overlay.WindowSpec) error {
	_, logger, cleanup, err := setup()
	if err != nil {
		return err
	}
	defer cleanup()

	log := logging.Component(logger, "overlay").WithField("pid", os.Getpid())

	content, err := fs.Sub(assets, "frontend/dist/overlay")
	if err != nil {
		return fmt.Errorf("overlay assets: %w", err)
	}

	opts := &options.App{
		Title:            spec.Title,
		Width:            int(math.Round(spec.Width)),
		Height:           int(math.Round(spec.Height)),
		Frameless:        true,
		DisableResize:    true,
		StartHidden:      true,
		AlwaysOnTop:      spec.AlwaysOnTop,
		BackgroundColour: &options.RGBA{R: 0, G: 0, B: 0, A: 0}, // Transparent
		AssetServer: &assetserver.Options{
			Assets: content,
		},
		Logger:   &logging.WailsLogger{Entry: logging.Component(logger, "wails")},
		LogLevel: logging.WailsLevel(logger.GetLevel()),
		OnStartup: func(ctx context.Context) {
			runtime.WindowSetPosition(ctx, int(math.Round(spec.X)), int(math.Round(spec.Y)))
			log.WithFields(logrus.Fields{"x": spec.X, "y": spec.Y}).Debug("Overlay window ready")

			target := window.NewRuntimeTarget(ctx, spec.Title)
			go func() {
				if err := window.Serve(os.Stdin, os.Stdout, target, log); err != nil {
					log.WithError(err).Warn("Overlay command loop ended with error")
				}
			}()
		},
	}
	transparentWindowOptions(opts)

	if err := wails.Run(opts); err != nil {
		return fmt.Errorf("error starting overlay: %w", err)
	}
	return nil
}
