//go:build !windows

package platform

import (
	"fmt"
	"runtime"
)

func windowsVersion() (Version, error) {
	return Version{}, fmt.Errorf(ERROR_UNSUPPORTED_PROBE, "windows version probe", runtime.GOOS)
}
