package doctor

// Section names, rendered as "Checking <name>...".
const (
	SECTION_ARCHITECTURE = "architecture"
	SECTION_OS_VERSION   = "OS version"
	SECTION_DIRECTORIES  = "Velo directories"
	SECTION_PATH         = "PATH"
	SECTION_PERMISSIONS  = "permissions"
	SECTION_PACKAGES     = "installed packages"
	SECTION_DISK_SPACE   = "disk space"
	SECTION_CONTEXT      = "context information"
)

const (
	MSG_ARCH_OK            = "Running on %s"
	MSG_ARCH_MISMATCH      = "Not running on %s (detected: %s)"
	MSG_ARCH_REQUIREMENT   = "Velo requires %s"
	MSG_ARCH_UNDETECTED    = "Could not detect architecture: %v"
	MSG_ARCH_TIMED_OUT     = "Architecture probe timed out: %v"
	MSG_OS_OK              = "%s %s (compatible)"
	MSG_OS_OLD             = "%s %s (may have compatibility issues)"
	MSG_OS_REQUIREMENT     = "Velo works best on %s %d+"
	MSG_OS_UNDETERMINED    = "Could not determine %s version: %v"
	MSG_DIR_OK             = "%s: %s"
	MSG_DIR_MISSING        = "%s: %s (missing)"
	MSG_DIR_NOT_DIR        = "%s: %s (not a directory)"
	MSG_DIR_UNREADABLE     = "%s: %s (%v)"
	MSG_PATH_OK            = "%s is in PATH"
	MSG_PATH_MISSING       = "%s is not in PATH"
	MSG_PATH_HINT          = "Add this to your shell profile:"
	MSG_PATH_EXPORT        = "echo 'export PATH=\"%s:$PATH\"' >> %s"
	MSG_WRITE_OK           = "Write permissions OK"
	MSG_WRITE_FAILED       = "Cannot write to Velo directories"
	MSG_ERROR_DETAIL       = "Error: %v"
	MSG_NO_PACKAGES        = "No packages installed"
	MSG_PACKAGE_OK         = "%s %s"
	MSG_PACKAGE_BROKEN     = "%s %s: %s"
	MSG_PACKAGE_UNVERIFIED = "%s %s: could not verify (%v)"
	MSG_ALL_PACKAGES_OK    = "All %d package(s) are properly installed"
	MSG_PACKAGES_FAILED    = "Failed to check packages: %v"
	MSG_DISK_OK            = "Disk space: %s available"
	MSG_DISK_LOW           = "Low disk space: %s available"
	MSG_DISK_UNKNOWN       = "Could not determine disk space: %v"
	MSG_CHECK_PANICKED     = "%s check failed unexpectedly: %v"
	MSG_LOCKED             = "Another velo process is using %s; results may be inconsistent"
	MSG_LOCK_FAILED        = "Could not lock %s: %v"
)

const (
	MSG_CTX_CWD             = "Current directory: %s"
	MSG_CTX_PROJECT         = "In project context (%s found)"
	MSG_CTX_GLOBAL          = "In global context (no %s found)"
	MSG_CTX_INIT_HINT       = "Run 'velo init' to create a new project"
	MSG_CTX_ROOT            = "Project root: %s"
	MSG_CTX_FILE            = "%s: %s %s"
	MSG_CTX_MANIFEST_BAD    = "%s could not be parsed: %v"
	MSG_CTX_MANIFEST_DEPS   = "%s declares %d dependenc(ies)"
	MSG_CTX_DEPENDENCIES    = "Dependencies: %s"
	MSG_CTX_LOCAL_DIR       = "Local .velo: %s %s"
	MSG_CTX_LOCAL_PACKAGES  = "Local packages:"
	MSG_CTX_GLOBAL_PACKAGES = "Global packages:"
	MSG_CTX_NO_PACKAGES     = "No %s packages installed"
	MSG_CTX_PACKAGE_LINE    = "%s: %s"
	MSG_CTX_LIST_FAILED     = "Failed to read %s packages: %v"
	MSG_CTX_RESOLUTION      = "Path resolution:"
	MSG_CTX_SCOPE_LINE      = "%d. %s: %s"
	MSG_CTX_NOT_CONFIGURED  = "Not configured"
	MSG_CTX_SYSTEM_DIRS     = "/usr/local/bin, /usr/bin, etc."
	MSG_CTX_RESOLVED        = "%s → %s: %s"
	MSG_CTX_NOT_FOUND       = "%s → not found"
	MSG_CTX_LOOKUP_FAILED   = "%s → lookup failed: %v"
	MSG_CTX_DETECT_FAILED   = "Could not detect project context: %v"
)

const (
	MSG_FIX_CREATED      = "Created %s: %s"
	MSG_FIX_NOTHING      = "All Velo directories already exist"
	MSG_FIX_DIRS_FAILED  = "Failed to create directories: %v"
	MSG_FIX_MANUAL       = "Some issues may require manual intervention"
	MSG_SUMMARY_CLEAN    = "No issues found. Velo is ready to go!"
	MSG_SUMMARY_ISSUES   = "Found %d issue(s)"
	MSG_SUMMARY_WARNINGS = "Found %d warning(s)"
	MSG_SUMMARY_FIX_HINT = "Run 'velo doctor --fix' to attempt automatic fixes"
)

// Icons for context lines that are informational rather than verdicts.
const (
	ICON_FOLDER   = "📁"
	ICON_FILE     = "📄"
	ICON_LOCK     = "🔒"
	ICON_DIR      = "📂"
	ICON_PACKAGE  = "📦"
	ICON_GLOBE    = "🌍"
	ICON_ROUTE    = "🛤️ "
	ICON_PRESENT  = "✅"
	ICON_ABSENT   = "❌"
	ICON_LOCATION = "📍"
)

const PROBE_FILE_PREFIX = ".velo-doctor-"
