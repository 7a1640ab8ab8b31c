//go:build !unix && !windows

package instance

import (
	"errors"
	"os"
)

var releaseOrder = []string{"flush", "remove", "unlock", "close"}

// lockFile falls back to exclusive creation. It is best-effort: a lock file
// left by a crashed process blocks new instances until it is deleted.
func lockFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, ErrInstanceAlreadyRunning
		}
		return nil, &LockError{Path: path, Err: err}
	}
	return f, nil
}

func unlockFile(*os.File) error {
	return nil
}
