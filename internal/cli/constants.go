package cli

// Command names
const (
	CmdDoctor  = "doctor"
	CmdVersion = "version"
)

// Flag names
const (
	FLAG_CONFIG  = "config"
	FLAG_VERBOSE = "verbose"
	FLAG_FIX     = "fix"
	FLAG_JSON    = "json"
)

const (
	LOGGER_COMPONENT    = "velo"
	LOG_LEVEL_VERBOSE   = "debug"
	ERROR_UNKNOWN_VALUE = "unknown"
)

// Exit codes
const (
	EXIT_OK     = 0
	EXIT_ISSUES = 1
)
