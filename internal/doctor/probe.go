package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"velo/internal/platform"
)

// Probes are the host queries behind the environment checks. Each one may
// block on an external process and is expected to honour ctx.
type Probes struct {
	Architecture func(ctx context.Context) (string, error)
	OSVersion    func(ctx context.Context) (platform.Version, error)
	FreeSpace    func(path string) (uint64, error)
	InPath       func(dir string) bool
}

// SystemProbes queries the real host through executor.
func SystemProbes(executor platform.CommandExecutor, timeout time.Duration) Probes {
	return Probes{
		Architecture: func(ctx context.Context) (string, error) {
			return platform.MachineArchitecture(ctx, executor, timeout)
		},
		OSVersion: func(ctx context.Context) (platform.Version, error) {
			return platform.OSVersion(ctx, executor, timeout)
		},
		FreeSpace: platform.FreeDiskSpace,
		InPath:    platform.IsInPath,
	}
}

func describeArchitecture(arch, goos string) string {
	if arch == "arm64" && goos == platform.PLATFORM_DARWIN {
		return "Apple Silicon (arm64)"
	}
	return arch
}

// EvaluateArchitecture accepts exactly the target architecture. Only
// surrounding whitespace from the probe output is ignored.
func EvaluateArchitecture(detected, target, goos string) CheckOutcome {
	want := strings.TrimSpace(target)
	got := strings.TrimSpace(detected)
	if got == want {
		return Ok(SECTION_ARCHITECTURE, MSG_ARCH_OK, describeArchitecture(want, goos))
	}
	return Issue(SECTION_ARCHITECTURE, MSG_ARCH_MISMATCH, describeArchitecture(want, goos), got).
		WithDetails(fmt.Sprintf(MSG_ARCH_REQUIREMENT, describeArchitecture(want, goos)))
}

func (d *Doctor) checkArchitecture(ctx context.Context) CheckOutcome {
	arch, err := d.probes.Architecture(ctx)
	if err != nil {
		if platform.IsTimeout(err) {
			return Warning(SECTION_ARCHITECTURE, MSG_ARCH_TIMED_OUT, err)
		}
		return Issue(SECTION_ARCHITECTURE, MSG_ARCH_UNDETECTED, err)
	}
	d.logger.Debug("architecture detected", "arch", arch)
	return EvaluateArchitecture(arch, d.cfg.TargetArchitecture, d.goos)
}

// EvaluateOSVersion compares the major version with the configured minimum.
// A minimum of zero accepts every version.
func EvaluateOSVersion(goos string, version platform.Version, minMajor int) CheckOutcome {
	name := platform.Platform(goos).DisplayName()
	if version.Major >= minMajor {
		return Ok(SECTION_OS_VERSION, MSG_OS_OK, name, version.String())
	}
	return Warning(SECTION_OS_VERSION, MSG_OS_OLD, name, version.String()).
		WithDetails(fmt.Sprintf(MSG_OS_REQUIREMENT, name, minMajor))
}

func (d *Doctor) checkOSVersion(ctx context.Context) CheckOutcome {
	version, err := d.probes.OSVersion(ctx)
	if err != nil {
		return Warning(SECTION_OS_VERSION, MSG_OS_UNDETERMINED, platform.Platform(d.goos).DisplayName(), err)
	}
	return EvaluateOSVersion(d.goos, version, d.cfg.MinOSVersion(d.goos))
}

// EvaluateDiskSpace warns below minFree. Sizes are shown in binary units.
func EvaluateDiskSpace(free, minFree uint64) CheckOutcome {
	size := humanize.IBytes(free)
	if free < minFree {
		return Warning(SECTION_DISK_SPACE, MSG_DISK_LOW, size)
	}
	return Ok(SECTION_DISK_SPACE, MSG_DISK_OK, size)
}

func (d *Doctor) checkDiskSpace(_ context.Context) CheckOutcome {
	// A fresh install has no home yet; measure the filesystem it will live on.
	dir, err := platform.NearestExistingDir(d.layout.Home)
	if err != nil {
		return Warning(SECTION_DISK_SPACE, MSG_DISK_UNKNOWN, err)
	}
	free, err := d.probes.FreeSpace(dir)
	if err != nil {
		return Warning(SECTION_DISK_SPACE, MSG_DISK_UNKNOWN, err)
	}
	d.logger.Debug("free disk space", "path", dir, "bytes", free)
	return EvaluateDiskSpace(free, d.cfg.MinFreeDiskBytes)
}

func (d *Doctor) checkPath(_ context.Context) CheckOutcome {
	bin := displayPath(d.layout.Bin)
	if d.probes.InPath(d.layout.Bin) {
		return Ok(SECTION_PATH, MSG_PATH_OK, bin)
	}
	return Warning(SECTION_PATH, MSG_PATH_MISSING, bin).WithDetails(
		MSG_PATH_HINT,
		fmt.Sprintf(MSG_PATH_EXPORT, shellPath(d.layout.Bin), shellProfile(os.Getenv("SHELL"))),
	)
}

// shellProfile picks the startup file the PATH hint should append to.
func shellProfile(shell string) string {
	switch filepath.Base(shell) {
	case "zsh":
		return "~/.zshrc"
	case "bash":
		return "~/.bashrc"
	default:
		return "~/.profile"
	}
}

// displayPath abbreviates the user's home directory to "~".
func displayPath(path string) string {
	return replaceHome(path, "~")
}

// shellPath abbreviates the user's home directory to "$HOME".
func shellPath(path string) string {
	return replaceHome(path, "$HOME")
}

func replaceHome(path, replacement string) string {
	home, err := platform.GetHomeDirectory()
	if err != nil || home == "" {
		return path
	}
	home = filepath.Clean(home)
	if path == home {
		return replacement
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return replacement + path[len(home):]
	}
	return path
}
