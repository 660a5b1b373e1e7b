//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

// FreeDiskSpace returns the bytes available to the calling user on the
// volume containing path.
func FreeDiskSpace(path string) (uint64, error) {
	dir, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, err
	}

	var freeToCaller, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(dir, &freeToCaller, &total, &totalFree); err != nil {
		return 0, err
	}
	return freeToCaller, nil
}
