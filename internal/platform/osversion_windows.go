//go:build windows

package platform

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func windowsVersion() (Version, error) {
	info := windows.RtlGetVersion()
	return Version{
		Major: int(info.MajorVersion),
		Minor: int(info.MinorVersion),
		Patch: int(info.BuildNumber),
		Raw:   fmt.Sprintf("%d.%d.%d", info.MajorVersion, info.MinorVersion, info.BuildNumber),
	}, nil
}
