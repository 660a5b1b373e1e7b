package platform

const (
	OS_RELEASE_FILE = "/etc/os-release"
	ENV_VAR_FORMAT  = "%s=%s"
	ENV_VAR_HOME    = "HOME"
	ENV_VAR_PATH    = "PATH"
	ENV_VAR_LC_ALL  = "LC_ALL"

	PROBE_LOCALE = "C"

	// Platform identifiers
	PLATFORM_DARWIN = "darwin"

	// External probes
	COMMAND_UNAME   = "uname"
	COMMAND_SW_VERS = "sw_vers"
	COMMAND_WHICH   = "which"
	COMMAND_WHERE   = "where"

	COMMAND_TIMEOUT_MESSAGE = "command timed out after %v"

	// Error messages
	ERROR_COMMAND_TIMEOUT    = "%s: %w after %v"
	ERROR_EMPTY_PROBE_OUTPUT = "%s returned no output"
	ERROR_INVALID_VERSION    = "invalid version string %q"
	ERROR_UNSUPPORTED_PROBE  = "%s is not supported on %s"
	ERROR_DIRECTORY_LOCKED   = "%s is locked by another process"
	ERROR_NO_EXISTING_PARENT = "no existing directory found for %s"

	// Status values
	STATUS_UNKNOWN = "unknown"
)
