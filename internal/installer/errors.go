package installer

import "fmt"

type InstallerErrorType string

const (
	InstallerErrorTypeNotFound InstallerErrorType = "not_found"

	InstallerErrorTypePermission InstallerErrorType = "permission_error"

	InstallerErrorTypeUnknown InstallerErrorType = "unknown_error"
)

type InstallerError struct {
	Type      InstallerErrorType
	Component string
	Message   string
	Cause     error
}

func (e *InstallerError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error for %s: %s (caused by: %v)",
			e.Type, e.Component, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error for %s: %s", e.Type, e.Component, e.Message)
}

func (e *InstallerError) Unwrap() error {
	return e.Cause
}

func (e *InstallerError) Is(target error) bool {
	if t, ok := target.(*InstallerError); ok {
		return e.Type == t.Type
	}
	return false
}

func NewInstallerError(errorType InstallerErrorType, component, message string, cause error) *InstallerError {
	return &InstallerError{
		Type:      errorType,
		Component: component,
		Message:   message,
		Cause:     cause,
	}
}

// VerificationError means the inspector could not reach a verdict, as
// opposed to reaching a negative one.
type VerificationError struct {
	Component string
	Check     string // "existence", "receipt", "symlinks"
	Path      string
	Cause     error
}

func (e *VerificationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("verification of %s failed during %s check at %s: %v",
			e.Component, e.Check, e.Path, e.Cause)
	}
	return fmt.Sprintf("verification of %s failed during %s check at %s",
		e.Component, e.Check, e.Path)
}

func (e *VerificationError) Unwrap() error {
	return e.Cause
}

func NewVerificationError(component, check, path string, cause error) *VerificationError {
	return &VerificationError{
		Component: component,
		Check:     check,
		Path:      path,
		Cause:     cause,
	}
}
