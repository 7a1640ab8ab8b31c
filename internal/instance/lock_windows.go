//go:build windows

package instance

import (
	"errors"
	"os"

	"golang.org/x/sys/windows"
)

// releaseOrder closes the handle first: the file cannot be deleted while
// it is open without FILE_SHARE_DELETE.
var releaseOrder = []string{"flush", "unlock", "close", "remove"}

func lockFile(path string) (*os.File, error) {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, &LockError{Path: path, Err: err}
	}

	// Share mode 0: no other handle may open the file while ours is alive.
	h, err := windows.CreateFile(
		name,
		windows.GENERIC_READ|windows.GENERIC_WRITE,
		0,
		nil,
		windows.OPEN_ALWAYS,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		if errors.Is(err, windows.ERROR_SHARING_VIOLATION) || errors.Is(err, windows.ERROR_LOCK_VIOLATION) {
			return nil, ErrInstanceAlreadyRunning
		}
		return nil, &LockError{Path: path, Err: err}
	}

	return os.NewFile(uintptr(h), path), nil
}

// unlockFile is a no-op: exclusivity ends when the handle is closed
func unlockFile(*os.File) error {
	return nil
}
