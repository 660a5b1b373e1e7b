package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformLinux   Platform = "linux"
	PlatformMacOS   Platform = "darwin"
	PlatformUnknown Platform = "unknown"
)

// GetCurrentPlatform returns the current operating system platform
// detected at runtime (Windows, Linux, Darwin/macOS, or Unknown).
func GetCurrentPlatform() Platform {
	switch runtime.GOOS {
	case string(PlatformWindows):
		return PlatformWindows
	case string(PlatformLinux):
		return PlatformLinux
	case PLATFORM_DARWIN:
		return PlatformMacOS
	default:
		return PlatformUnknown
	}
}

func IsWindows() bool {
	return GetCurrentPlatform() == PlatformWindows
}

func IsLinux() bool {
	return GetCurrentPlatform() == PlatformLinux
}

func IsMacOS() bool {
	return GetCurrentPlatform() == PlatformMacOS
}

func (p Platform) String() string {
	return string(p)
}

// DisplayName is the human name used in report lines.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformMacOS:
		return "macOS"
	case PlatformLinux:
		return "Linux"
	case PlatformWindows:
		return "Windows"
	default:
		return STATUS_UNKNOWN
	}
}

func GetHomeDirectory() (string, error) {
	if IsWindows() {
		if home := os.Getenv("USERPROFILE"); home != "" {
			return home, nil
		}

		drive := os.Getenv("HOMEDRIVE")
		path := os.Getenv("HOMEPATH")
		if drive != "" && path != "" {
			return drive + path, nil
		}

		return "", fmt.Errorf("could not determine home directory on Windows")
	}

	if home := os.Getenv(ENV_VAR_HOME); home != "" {
		return home, nil
	}

	return "", fmt.Errorf("could not determine home directory")
}

// MachineArchitecture reports the hardware name as `uname -m` prints it.
// On Windows the processor architecture variable is normalised to the same vocabulary.
func MachineArchitecture(ctx context.Context, executor CommandExecutor, timeout time.Duration) (string, error) {
	if IsWindows() {
		arch := strings.ToLower(os.Getenv("PROCESSOR_ARCHITECTURE"))
		switch arch {
		case "amd64":
			return "x86_64", nil
		case "":
			return "", fmt.Errorf(ERROR_EMPTY_PROBE_OUTPUT, "PROCESSOR_ARCHITECTURE")
		default:
			return arch, nil
		}
	}

	result, err := executor.Execute(ctx, COMMAND_UNAME, []string{"-m"}, timeout)
	if err != nil {
		return "", err
	}

	arch := strings.TrimSpace(result.Stdout)
	if arch == "" {
		return "", fmt.Errorf(ERROR_EMPTY_PROBE_OUTPUT, COMMAND_UNAME+" -m")
	}
	return arch, nil
}

// Version is a dotted numeric version such as 14.2.1.
type Version struct {
	Major int
	Minor int
	Patch int
	Raw   string
}

func (v Version) String() string {
	if v.Raw != "" {
		return v.Raw
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseVersion reads up to three leading numeric components. Trailing
// qualifiers such as "-generic" or "+build" are ignored.
func ParseVersion(raw string) (Version, error) {
	raw = strings.TrimSpace(raw)
	version := Version{Raw: raw}

	parts := strings.SplitN(raw, ".", 4)
	numbers := make([]int, 0, 3)
	for _, part := range parts {
		if len(numbers) == 3 {
			break
		}
		end := 0
		for end < len(part) && part[end] >= '0' && part[end] <= '9' {
			end++
		}
		if end == 0 {
			break
		}
		n, err := strconv.Atoi(part[:end])
		if err != nil {
			return Version{}, fmt.Errorf(ERROR_INVALID_VERSION, raw)
		}
		numbers = append(numbers, n)
		if end < len(part) {
			break
		}
	}

	if len(numbers) == 0 {
		return Version{}, fmt.Errorf(ERROR_INVALID_VERSION, raw)
	}

	version.Major = numbers[0]
	if len(numbers) > 1 {
		version.Minor = numbers[1]
	}
	if len(numbers) > 2 {
		version.Patch = numbers[2]
	}
	return version, nil
}

// OSVersion returns the product version on macOS, the kernel release on Linux
// (falling back to the distribution VERSION_ID) and the NT version on Windows.
func OSVersion(ctx context.Context, executor CommandExecutor, timeout time.Duration) (Version, error) {
	if IsMacOS() {
		result, err := executor.Execute(ctx, COMMAND_SW_VERS, []string{"-productVersion"}, timeout)
		if err != nil {
			return Version{}, err
		}
		return ParseVersion(result.Stdout)
	}

	if IsWindows() {
		return windowsVersion()
	}

	v, err := kernelRelease(ctx, executor, timeout)
	if !IsLinux() || err == nil || IsTimeout(err) {
		return v, err
	}
	if release, rerr := readReleaseFile(OS_RELEASE_FILE); rerr == nil {
		if id, ok := release["VERSION_ID"]; ok {
			return ParseVersion(id)
		}
	}
	return Version{}, err
}

func kernelRelease(ctx context.Context, executor CommandExecutor, timeout time.Duration) (Version, error) {
	result, err := executor.Execute(ctx, COMMAND_UNAME, []string{"-r"}, timeout)
	if err != nil {
		return Version{}, err
	}
	return ParseVersion(result.Stdout)
}

func readReleaseFile(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseReleaseFile(string(content)), nil
}

func parseReleaseFile(content string) map[string]string {
	result := make(map[string]string)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		if len(value) >= 2 && (value[0] == '"' || value[0] == '\'') && value[len(value)-1] == value[0] {
			value = value[1 : len(value)-1]
		}

		result[key] = value
	}

	return result
}

// IsInPath reports whether dir is one of the entries of $PATH.
func IsInPath(dir string) bool {
	return pathListContains(os.Getenv(ENV_VAR_PATH), dir)
}

func pathListContains(pathList, dir string) bool {
	want := filepath.Clean(dir)
	for _, entry := range filepath.SplitList(pathList) {
		if entry == "" {
			continue
		}
		if filepath.Clean(entry) == want {
			return true
		}
	}
	return false
}

// NearestExistingDir walks up from path until it finds a directory that exists.
func NearestExistingDir(path string) (string, error) {
	dir := filepath.Clean(path)
	for {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf(ERROR_NO_EXISTING_PARENT, path)
		}
		dir = parent
	}
}
