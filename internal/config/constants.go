package config

import "time"

const (
	DefaultConfigFile   = "config.yaml"
	DefaultHomeDirName  = ".velo"
	DefaultManifestFile = "velo.json"
	DefaultLockFile     = "velo.lock"

	DefaultTargetArchitecture = "arm64"
	DefaultMinFreeDiskBytes   = 1_000_000_000
	DefaultListingLimit       = 5
	DefaultLogLevel           = "warn"

	// Error messages
	ERROR_CONFIG_NOT_FOUND    = "configuration file not found: %s"
	ERROR_CONFIG_READ         = "failed to read configuration file %s: %w"
	ERROR_CONFIG_PARSE        = "failed to parse configuration file %s: %w"
	ERROR_CONFIG_INVALID      = "configuration validation failed: %w"
	ERROR_HOME_UNRESOLVED     = "could not determine velo home directory: %w"
	ERROR_FIELD_NOT_POSITIVE  = "%s must be greater than zero"
	ERROR_FIELD_EMPTY         = "%s must not be empty"
	ERROR_FIELD_NOT_FILE_NAME = "%s must be a plain file name, got %q"
	ERROR_FIELD_NOT_ABSOLUTE  = "%s must be an absolute path, got %q"
	ERROR_NEGATIVE_OS_VERSION = "min_os_versions[%s] must not be negative"
	ERROR_CONFLICTING_PACKAGE = "package %q is listed in both force_dependency and force_user"
)

const DefaultProbeTimeout = 10 * time.Second

// Default minimum supported major versions, keyed by GOOS. On Linux this is
// compared with the kernel release.
var defaultMinOSVersions = map[string]int{
	"darwin": 12,
	"linux":  5,
}

var defaultSampleCommands = []string{"wget", "node", "python"}
