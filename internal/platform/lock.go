package platform

import "errors"

// ErrLocked is wrapped by TryLockDir when another process holds the lock.
var ErrLocked = errors.New("directory locked")
