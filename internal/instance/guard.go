// Package instance guarantees that at most one copy of the application runs
// per machine by holding an exclusive lock on a well-known file.
//
// The lock primitive is platform specific:
//
//   - unix: flock(2) with LOCK_EX|LOCK_NB on <tmp>/<name>.lock. The kernel
//     drops the lock when the process dies, so a crash never leaves the
//     application locked out.
//   - windows: the file is opened with a zero share mode, so a second open
//     fails with a sharing violation while the first handle lives. This is
//     weaker than flock: any other program holding the file open (a backup
//     agent, an editor) is reported as a running instance, and the file is
//     only removed on graceful release.
//   - everything else: exclusive creation of the lock file. A crashed owner
//     leaves the file behind and blocks later launches until it is removed.
package instance

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// ErrInstanceAlreadyRunning is returned when another process owns the lock
var ErrInstanceAlreadyRunning = errors.New("another instance is already running")

// LockError reports that the lock resource itself could not be created or used
type LockError struct {
	Path string
	Err  error
}

func (e *LockError) Error() string {
	return fmt.Sprintf("instance lock %s: %v", e.Path, e.Err)
}

func (e *LockError) Unwrap() error { return e.Err }

// Guard owns the instance lock until Release is called
type Guard struct {
	path string
	file *os.File
	once sync.Once
}

// LockName derives the lock identifier from a human-readable application name
func LockName(appName string) string {
	return strings.ToLower(strings.ReplaceAll(appName, " ", "-"))
}

// LockPath returns the lock file used for appName inside dir
func LockPath(dir, appName string) string {
	return filepath.Join(dir, LockName(appName)+".lock")
}

// Acquire takes the instance lock for appName in the platform temp directory
func Acquire(appName string) (*Guard, error) {
	return AcquireIn(os.TempDir(), appName)
}

// AcquireIn takes the instance lock for appName inside dir. It never blocks:
// if another process holds the lock it returns ErrInstanceAlreadyRunning.
func AcquireIn(dir, appName string) (*Guard, error) {
	if strings.TrimSpace(appName) == "" {
		return nil, errors.New("instance: application name must not be empty")
	}
	if strings.ContainsAny(appName, `/\`) {
		return nil, fmt.Errorf("instance: application name %q must not contain path separators", appName)
	}

	path := LockPath(dir, appName)
	f, err := lockFile(path)
	if err != nil {
		return nil, err
	}

	g := &Guard{path: path, file: f}
	if err := stampOwner(f); err != nil {
		_ = g.Release()
		return nil, &LockError{Path: path, Err: err}
	}
	return g, nil
}

// Path returns the backing lock file
func (g *Guard) Path() string {
	return g.path
}

// Release flushes, removes, unlocks and closes the lock file, in the order
// the platform needs (see releaseOrder). Only the first call does any work;
// later calls return nil.
func (g *Guard) Release() error {
	if g == nil {
		return nil
	}

	var err error
	g.once.Do(func() {
		err = g.release()
	})
	return err
}

// releaseHook, when set, runs after each release step
var releaseHook func(step string)

func (g *Guard) release() error {
	f := g.file
	g.file = nil

	var errs []error
	for _, step := range releaseOrder {
		if err := g.releaseStep(f, step); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", step, err))
		}
		if releaseHook != nil {
			releaseHook(step)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return &LockError{Path: g.path, Err: err}
	}
	return nil
}

func (g *Guard) releaseStep(f *os.File, step string) error {
	switch step {
	case "flush":
		return f.Sync()
	case "unlock":
		return unlockFile(f)
	case "close":
		return f.Close()
	case "remove":
		if err := os.Remove(g.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unknown release step %q", step)
	}
}

// stampOwner records the owning PID for diagnostics; the lock itself does not depend on it
func stampOwner(f *os.File) error {
	if err := f.Truncate(0); err != nil {
		return err
	}
	if _, err := f.WriteAt([]byte(strconv.Itoa(os.Getpid())), 0); err != nil {
		return err
	}
	return f.Sync()
}

// ReadOwner returns the PID recorded in a lock file
func ReadOwner(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("lock file %s holds no pid: %w", path, err)
	}
	return pid, nil
}
