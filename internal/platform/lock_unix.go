//go:build darwin || linux

package platform

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// TryLockDir takes a non-blocking advisory lock on an existing directory.
// No file is created; the lock lives on the directory descriptor.
func TryLockDir(path string) (func() error, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	if err := unix.Flock(int(dir.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		dir.Close()
		if errors.Is(err, unix.EWOULDBLOCK) {
			return nil, fmt.Errorf(ERROR_DIRECTORY_LOCKED+": %w", path, ErrLocked)
		}
		return nil, err
	}

	return func() error {
		unlockErr := unix.Flock(int(dir.Fd()), unix.LOCK_UN)
		closeErr := dir.Close()
		if unlockErr != nil {
			return unlockErr
		}
		return closeErr
	}, nil
}
