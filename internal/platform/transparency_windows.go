//go:build windows

package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Supported reports that this platform has a native transparency routine
const Supported = true

// Windows constants for window styles and DWM attributes
const (
	_GWL_EXSTYLE      int32 = -20
	_WS_EX_TOOLWINDOW int32 = 0x00000080
	_WS_EX_APPWINDOW  int32 = 0x00040000

	_DWMWA_NCRENDERING_POLICY = 2
	_DWMNCRP_DISABLED         = 1

	_SWP_NOSIZE       = 0x0001
	_SWP_NOMOVE       = 0x0002
	_SWP_NOACTIVATE   = 0x0010
	_SWP_FRAMECHANGED = 0x0020
)

// _HWND_TOPMOST is (HWND)-1
var _HWND_TOPMOST = ^uintptr(0)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	dwmapi                    = windows.NewLazySystemDLL("dwmapi.dll")
	procFindWindowW           = user32.NewProc("FindWindowW")
	procGetWindowLongW        = user32.NewProc("GetWindowLongW")
	procSetWindowLongW        = user32.NewProc("SetWindowLongW")
	procSetWindowPos          = user32.NewProc("SetWindowPos")
	procDwmSetWindowAttribute = dwmapi.NewProc("DwmSetWindowAttribute")
)

// ApplyTransparency finds the window by title, hides it from the taskbar,
// turns off DWM non-client rendering (which draws the drop shadow) and
// places it in the topmost band. The transparent background itself comes
// from the WebView options the window was created with.
func ApplyTransparency(title string) error {
	hwnd, err := findWindow(title)
	if err != nil {
		return err
	}

	idx := _GWL_EXSTYLE
	exStyle, _, _ := procGetWindowLongW.Call(hwnd, uintptr(idx))
	newStyle := (int32(exStyle) | _WS_EX_TOOLWINDOW) &^ _WS_EX_APPWINDOW
	procSetWindowLongW.Call(hwnd, uintptr(idx), uintptr(newStyle))

	policy := uint32(_DWMNCRP_DISABLED)
	hr, _, _ := procDwmSetWindowAttribute.Call(
		hwnd,
		_DWMWA_NCRENDERING_POLICY,
		uintptr(unsafe.Pointer(&policy)),
		unsafe.Sizeof(policy),
	)
	if hr != 0 {
		return fmt.Errorf("DwmSetWindowAttribute failed: HRESULT 0x%08x", uint32(hr))
	}

	ret, _, callErr := procSetWindowPos.Call(
		hwnd,
		_HWND_TOPMOST,
		0, 0, 0, 0,
		_SWP_NOMOVE|_SWP_NOSIZE|_SWP_NOACTIVATE|_SWP_FRAMECHANGED,
	)
	if ret == 0 {
		return fmt.Errorf("SetWindowPos failed: %w", callErr)
	}
	return nil
}

func findWindow(title string) (uintptr, error) {
	name, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return 0, err
	}
	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(name)))
	if hwnd == 0 {
		return 0, fmt.Errorf("no window titled %q", title)
	}
	return hwnd, nil
}
