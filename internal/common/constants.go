package common

const (
	// Environment variables
	ENV_VELO_HOME      = "VELO_HOME"
	ENV_VELO_LOG_LEVEL = "VELO_LOG_LEVEL"
	ENV_NO_COLOR       = "NO_COLOR"

	// Logging
	LOG_TIME_LAYOUT = "2006/01/02 15:04:05"

	// Error messages
	ERROR_UNKNOWN_LOG_LEVEL = "unknown log level %q (expected debug, info, warn or error)"
)
