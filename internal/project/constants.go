package project

const (
	// Log field names
	LOG_FIELD_COMMAND = "command"
	LOG_FIELD_SCOPE   = "scope"

	// Detection phases
	PHASE_SCANNING = "scanning"

	// Format strings
	FORMAT_MORE_PACKAGES = "... and %d more"
	FORMAT_SCOPE_LOCAL   = "Local (.velo/bin)"
	FORMAT_SCOPE_GLOBAL  = "Global (~/.velo/bin)"
	FORMAT_SCOPE_SYSTEM  = "System PATH"

	// Error messages
	ERROR_RESOLVE_START_DIR  = "failed to resolve start directory: %w"
	ERROR_READ_MANIFEST      = "failed to read manifest"
	ERROR_PARSE_MANIFEST     = "manifest is not valid JSON"
	ERROR_MANIFEST_NO_NAME   = "manifest has no name"
	ERROR_READ_PACKAGE_STORE = "failed to read package store"
)
