//go:build !darwin && !linux && !windows

package platform

import (
	"fmt"
	"runtime"
)

func FreeDiskSpace(path string) (uint64, error) {
	return 0, fmt.Errorf(ERROR_UNSUPPORTED_PROBE, "disk space probe", runtime.GOOS)
}
