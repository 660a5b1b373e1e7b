//go:build darwin || linux

package platform

import (
	"golang.org/x/sys/unix"
)

// FreeDiskSpace returns the bytes available to unprivileged users on the
// filesystem containing path.
func FreeDiskSpace(path string) (uint64, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(path, &stat); err != nil {
		return 0, err
	}
	return uint64(stat.Bavail) * uint64(stat.Bsize), nil
}
