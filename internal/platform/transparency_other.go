//go:build !darwin && !windows

package platform

// Supported is false: transparency comes from the window content and runtime options
const Supported = false

// ApplyTransparency is a no-op on this platform
func ApplyTransparency(title string) error {
	return nil
}
