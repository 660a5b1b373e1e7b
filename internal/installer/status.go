package installer

import "fmt"

// Package identifies one installed version on disk.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

func (p Package) String() string {
	return p.Name + " " + p.Version
}

type StatusKind int

const (
	StatusNotInstalled StatusKind = iota
	StatusInstalled
	StatusCorrupted
)

func (k StatusKind) String() string {
	switch k {
	case StatusInstalled:
		return "installed"
	case StatusCorrupted:
		return "corrupted"
	default:
		return "not_installed"
	}
}

// InstallationStatus is the verdict for one Package. Reason is only set for Corrupted.
type InstallationStatus struct {
	Kind   StatusKind `json:"kind"`
	Reason string     `json:"reason,omitempty"`
}

func Installed() InstallationStatus {
	return InstallationStatus{Kind: StatusInstalled}
}

func NotInstalled() InstallationStatus {
	return InstallationStatus{Kind: StatusNotInstalled}
}

func Corrupted(reason string) InstallationStatus {
	return InstallationStatus{Kind: StatusCorrupted, Reason: reason}
}

func Corruptedf(format string, args ...interface{}) InstallationStatus {
	return Corrupted(fmt.Sprintf(format, args...))
}

func (s InstallationStatus) IsInstalled() bool {
	return s.Kind == StatusInstalled
}

func (s InstallationStatus) String() string {
	if s.Kind == StatusCorrupted {
		return fmt.Sprintf("%s: %s", s.Kind, s.Reason)
	}
	return s.Kind.String()
}
