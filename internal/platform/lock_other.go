//go:build !darwin && !linux

package platform

import "os"

// TryLockDir only checks that the directory can be opened on platforms
// without flock(2).
func TryLockDir(path string) (func() error, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return dir.Close, nil
}
