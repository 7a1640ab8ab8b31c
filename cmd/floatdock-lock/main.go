package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"floatdock/internal/instance"
)

func main() {
	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	var dir string

	root := &cobra.Command{
		Use:           "floatdock-lock",
		Short:         "Inspect the single-instance lock of a desktop application",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dir, "dir", os.TempDir(), "directory holding lock files")

	root.AddCommand(&cobra.Command{
		Use:   "path <app name>",
		Short: "Print the lock file path for an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(out, instance.LockPath(dir, args[0]))
			return err
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "status <app name>",
		Short: "Report whether an instance of the application is running",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return status(out, dir, args[0])
		},
	})

	return root
}

// status probes the lock by acquiring and immediately releasing it
func status(out io.Writer, dir, name string) error {
	guard, err := instance.AcquireIn(dir, name)
	if errors.Is(err, instance.ErrInstanceAlreadyRunning) {
		path := instance.LockPath(dir, name)
		if pid, perr := instance.ReadOwner(path); perr == nil {
			_, err = fmt.Fprintf(out, "running (pid %d)\n", pid)
			return err
		}
		_, err = fmt.Fprintln(out, "running")
		return err
	}
	if err != nil {
		return err
	}
	if err := guard.Release(); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, "not running")
	return err
}
