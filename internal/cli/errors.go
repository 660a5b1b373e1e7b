package cli

import (
	"fmt"
	"strings"
)

type ErrorType int

const (
	ErrorTypeConfig ErrorType = iota
	ErrorTypeRuntime
)

type CLIError struct {
	Type        ErrorType
	Message     string
	Cause       error
	Suggestions []string
	RelatedCmds []string
}

func (e *CLIError) Error() string {
	if e == nil {
		return "❌ Error: unknown error (nil CLIError)"
	}

	var parts []string

	switch e.Type {
	case ErrorTypeConfig:
		parts = append(parts, "⚙️  Configuration Error:")
	case ErrorTypeRuntime:
		parts = append(parts, "⚡ Runtime Error:")
	default:
		parts = append(parts, "❌ Error:")
	}

	message := e.Message
	if message == "" {
		message = "unknown error"
	}
	parts = append(parts, message)

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("\n   Cause: %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		parts = append(parts, "\n\n💡 Try these solutions:")
		for i, suggestion := range e.Suggestions {
			parts = append(parts, fmt.Sprintf("   %d. %s", i+1, suggestion))
		}
	}

	if len(e.RelatedCmds) > 0 {
		parts = append(parts, "\n\n🔗 Related commands:")
		for _, cmd := range e.RelatedCmds {
			parts = append(parts, fmt.Sprintf("   velo %s", cmd))
		}
	}

	return strings.Join(parts, " ")
}

func (e *CLIError) Unwrap() error {
	return e.Cause
}

func NewConfigError(message string, cause error) *CLIError {
	return &CLIError{
		Type:    ErrorTypeConfig,
		Message: message,
		Cause:   cause,
		Suggestions: []string{
			"Check the config file: cat $VELO_HOME/config.yaml",
			"Point at another file with: velo doctor --config <path>",
			"Unset VELO_HOME to fall back to ~/.velo",
		},
		RelatedCmds: []string{
			"doctor --verbose",
		},
	}
}

func NewRuntimeError(message string, cause error) *CLIError {
	return &CLIError{
		Type:    ErrorTypeRuntime,
		Message: message,
		Cause:   cause,
		RelatedCmds: []string{
			"doctor --verbose",
			"version",
		},
	}
}

// ExitError ends the process with Code. A nil Err means everything worth
// saying has already been printed.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
