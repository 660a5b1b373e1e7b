package platform

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentPlatform(t *testing.T) {
	p := GetCurrentPlatform()
	switch runtime.GOOS {
	case "windows":
		assert.Equal(t, PlatformWindows, p)
		assert.True(t, IsWindows())
	case "linux":
		assert.Equal(t, PlatformLinux, p)
		assert.True(t, IsLinux())
	case "darwin":
		assert.Equal(t, PlatformMacOS, p)
		assert.True(t, IsMacOS())
	default:
		assert.Equal(t, PlatformUnknown, p)
	}
	assert.NotEmpty(t, p.DisplayName())
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		raw     string
		major   int
		minor   int
		patch   int
		wantErr bool
	}{
		{"14.2.1", 14, 2, 1, false},
		{"12", 12, 0, 0, false},
		{"22.04\n", 22, 4, 0, false},
		{"5.15.0-91-generic", 5, 15, 0, false},
		{"6.8.9+rpt-rpi", 6, 8, 9, false},
		{"11.7.10.1", 11, 7, 10, false},
		{"sonoma", 0, 0, 0, true},
		{"", 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := ParseVersion(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.major, v.Major)
			assert.Equal(t, tt.minor, v.Minor)
			assert.Equal(t, tt.patch, v.Patch)
			assert.Equal(t, strings.TrimSpace(tt.raw), v.String())
		})
	}
}

func TestParseReleaseFile(t *testing.T) {
	content := `# comment
NAME="Ubuntu"
VERSION_ID="22.04"
ID=ubuntu
ID_LIKE='debian'
broken line
`
	release := parseReleaseFile(content)
	assert.Equal(t, "Ubuntu", release["NAME"])
	assert.Equal(t, "22.04", release["VERSION_ID"])
	assert.Equal(t, "ubuntu", release["ID"])
	assert.Equal(t, "debian", release["ID_LIKE"])
	assert.NotContains(t, release, "broken line")
}

func TestMachineArchitecture(t *testing.T) {
	if IsWindows() {
		t.Skip("windows reads PROCESSOR_ARCHITECTURE")
	}

	t.Run("trimmed output", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on(COMMAND_UNAME, []string{"-m"}, &Result{Stdout: "arm64\n"}, nil)

		arch, err := MachineArchitecture(context.Background(), fake, time.Second)
		require.NoError(t, err)
		assert.Equal(t, "arm64", arch)
	})

	t.Run("empty output", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on(COMMAND_UNAME, []string{"-m"}, &Result{Stdout: "  \n"}, nil)

		_, err := MachineArchitecture(context.Background(), fake, time.Second)
		assert.Error(t, err)
	})

	t.Run("probe timeout", func(t *testing.T) {
		fake := newFakeExecutor()
		fake.on(COMMAND_UNAME, []string{"-m"}, &Result{ExitCode: -1}, ErrCommandTimeout)

		_, err := MachineArchitecture(context.Background(), fake, time.Second)
		assert.True(t, IsTimeout(err))
	})
}

func TestOSVersionOnMacOS(t *testing.T) {
	if !IsMacOS() {
		t.Skip("sw_vers only exists on macOS")
	}
	fake := newFakeExecutor()
	fake.on(COMMAND_SW_VERS, []string{"-productVersion"}, &Result{Stdout: "14.4.1\n"}, nil)

	v, err := OSVersion(context.Background(), fake, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 14, v.Major)
}

func TestKernelRelease(t *testing.T) {
	fake := newFakeExecutor()
	fake.on(COMMAND_UNAME, []string{"-r"}, &Result{Stdout: "6.1.0-18-amd64\n"}, nil)

	v, err := kernelRelease(context.Background(), fake, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 6, v.Major)
	assert.Equal(t, 1, v.Minor)
}

func TestPathListContains(t *testing.T) {
	sep := string(os.PathListSeparator)
	bin := filepath.Join("home", "user", ".velo", "bin")
	list := strings.Join([]string{"/usr/bin", bin + string(filepath.Separator), "", "/bin"}, sep)

	assert.True(t, pathListContains(list, bin))
	assert.False(t, pathListContains(list, filepath.Join("home", "user", ".velo")))
	assert.False(t, pathListContains("", bin))
}

func TestIsInPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(ENV_VAR_PATH, dir+string(os.PathListSeparator)+os.Getenv(ENV_VAR_PATH))
	assert.True(t, IsInPath(dir))
	assert.False(t, IsInPath(filepath.Join(dir, "missing")))
}

func TestNearestExistingDir(t *testing.T) {
	root := t.TempDir()
	deep := filepath.Join(root, "a", "b", "c")

	found, err := NearestExistingDir(deep)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(root), found)

	found, err = NearestExistingDir(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean(root), found)
}

func TestOSVersionOnLinuxUsesKernelRelease(t *testing.T) {
	if !IsLinux() {
		t.Skip("kernel release is only the OS version on linux")
	}
	fake := newFakeExecutor()
	fake.on(COMMAND_UNAME, []string{"-r"}, &Result{Stdout: "6.8.0-45-generic\n"}, nil)

	v, err := OSVersion(context.Background(), fake, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 6, v.Major)
	assert.Equal(t, 8, v.Minor)

	slow := newFakeExecutor()
	slow.on(COMMAND_UNAME, []string{"-r"}, &Result{ExitCode: -1}, ErrCommandTimeout)
	_, err = OSVersion(context.Background(), slow, time.Second)
	assert.True(t, IsTimeout(err), "a timeout is not masked by the os-release fallback")
}
