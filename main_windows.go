//go:build windows

package main

import (
	"fmt"
	"unsafe"

	"github.com/wailsapp/wails/v2/pkg/options"
	wailswindows "github.com/wailsapp/wails/v2/pkg/options/windows"
	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procGetWindowText       = user32.NewProc("GetWindowTextW")
	procGetForegroundWindow = user32.NewProc("GetForegroundWindow")
)

// foregroundWindowTitle returns the title of the currently active window
func foregroundWindowTitle() (string, error) {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return "", fmt.Errorf("no foreground window found")
	}

	titleBuf := make([]uint16, 256)
	ret, _, _ := procGetWindowText.Call(
		hwnd,
		uintptr(unsafe.Pointer(&titleBuf[0])),
		uintptr(len(titleBuf)),
	)
	if ret == 0 {
		return "", fmt.Errorf("failed to get window title")
	}

	return windows.UTF16ToString(titleBuf), nil
}

// transparentWindowOptions lets the desktop show through the overlay's web view
func transparentWindowOptions(opts *options.App) {
	opts.Windows = &wailswindows.Options{
		WebviewIsTransparent: true,
		WindowIsTranslucent:  true,
		DisableWindowIcon:    true,
	}
}
