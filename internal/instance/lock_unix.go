//go:build unix

package instance

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// releaseOrder unlinks the path while the flock is still held, so a
// contender that locks the old inode always sees it replaced and retries.
var releaseOrder = []string{"flush", "remove", "unlock", "close"}

// maxLockAttempts bounds retries when the lock file is replaced between open and flock
const maxLockAttempts = 5

func lockFile(path string) (*os.File, error) {
	for attempt := 0; attempt < maxLockAttempts; attempt++ {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0600)
		if err != nil {
			return nil, &LockError{Path: path, Err: err}
		}

		if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
			_ = f.Close()
			if errors.Is(err, unix.EWOULDBLOCK) {
				return nil, ErrInstanceAlreadyRunning
			}
			return nil, &LockError{Path: path, Err: err}
		}

		// The previous owner unlinks the file on release. If that happened
		// after our open, we hold a lock on an orphaned inode and must retry.
		current, err := sameFile(f, path)
		if err != nil {
			_ = unlockFile(f)
			_ = f.Close()
			return nil, &LockError{Path: path, Err: err}
		}
		if current {
			return f, nil
		}
		_ = unlockFile(f)
		_ = f.Close()
	}

	return nil, &LockError{Path: path, Err: errors.New("lock file replaced repeatedly while locking")}
}

func unlockFile(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}

func sameFile(f *os.File, path string) (bool, error) {
	held, err := f.Stat()
	if err != nil {
		return false, err
	}
	onDisk, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return os.SameFile(held, onDisk), nil
}
