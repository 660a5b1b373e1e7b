package project

import "fmt"

type ProjectErrorType string

const (
	ProjectErrorTypeManifest   ProjectErrorType = "manifest_error"
	ProjectErrorTypeFileSystem ProjectErrorType = "filesystem_error"
)

type ProjectError struct {
	Type        ProjectErrorType
	ProjectRoot string
	Message     string
	Path        string
	Cause       error
}

func (e *ProjectError) Error() string {
	location := e.Path
	if location == "" {
		location = e.ProjectRoot
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s at %s: %s (caused by: %v)", e.Type, location, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s at %s: %s", e.Type, location, e.Message)
}

func (e *ProjectError) Unwrap() error {
	return e.Cause
}

func (e *ProjectError) Is(target error) bool {
	if t, ok := target.(*ProjectError); ok {
		return e.Type == t.Type
	}
	return false
}

func NewProjectError(errorType ProjectErrorType, projectRoot, message string, cause error) *ProjectError {
	return &ProjectError{
		Type:        errorType,
		ProjectRoot: projectRoot,
		Message:     message,
		Cause:       cause,
	}
}

func (e *ProjectError) WithPath(path string) *ProjectError {
	e.Path = path
	return e
}

// DetectionError is returned when the upward manifest search cannot inspect a directory.
type DetectionError struct {
	Phase string // PHASE_SCANNING
	Path  string
	Cause error
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("project detection failed during %s phase at %s: %v", e.Phase, e.Path, e.Cause)
}

func (e *DetectionError) Unwrap() error {
	return e.Cause
}

func NewDetectionError(phase, path string, cause error) *DetectionError {
	return &DetectionError{Phase: phase, Path: path, Cause: cause}
}
