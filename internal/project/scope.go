package project

import (
	"context"
	"path/filepath"

	"velo/internal/common"
	"velo/internal/paths"
	"velo/internal/platform"
)

// Scope is a tier in command resolution. Lower values take precedence.
type Scope int

const (
	ScopeLocal Scope = iota
	ScopeGlobal
	ScopeSystem
)

func (s Scope) String() string {
	switch s {
	case ScopeLocal:
		return "local"
	case ScopeGlobal:
		return "global"
	default:
		return "system"
	}
}

// Label is the human description used in the resolution order listing.
func (s Scope) Label() string {
	switch s {
	case ScopeLocal:
		return FORMAT_SCOPE_LOCAL
	case ScopeGlobal:
		return FORMAT_SCOPE_GLOBAL
	default:
		return FORMAT_SCOPE_SYSTEM
	}
}

func (s Scope) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ResolveScopes returns the scopes in priority order. The local scope only
// exists inside a project whose store is not the global one.
func ResolveScopes(ctx Context, global paths.Layout) []Scope {
	if ctx.HasLocalScope(global) {
		return []Scope{ScopeLocal, ScopeGlobal, ScopeSystem}
	}
	return []Scope{ScopeGlobal, ScopeSystem}
}

// Resolution is how one command name currently resolves.
type Resolution struct {
	Command string `json:"command"`
	Found   bool   `json:"found"`
	Scope   Scope  `json:"scope"`
	Path    string `json:"path,omitempty"`
}

// Resolver classifies located commands by which velo tree they live in.
// It only reports; it never changes how commands are dispatched.
type Resolver struct {
	locator platform.CommandLocator
	global  paths.Layout
	project Context
	logger  *common.Logger
}

func NewResolver(locator platform.CommandLocator, global paths.Layout, project Context, logger *common.Logger) *Resolver {
	if logger == nil {
		logger = common.NewNopLogger()
	}
	return &Resolver{
		locator: locator,
		global:  global,
		project: project,
		logger:  logger.Named("resolver"),
	}
}

// Resolve locates command and classifies the hit. err is only set when the
// locator itself failed (including timeouts).
func (r *Resolver) Resolve(ctx context.Context, command string) (Resolution, error) {
	resolution := Resolution{Command: command, Scope: ScopeSystem}

	path, found, err := r.locator.Locate(ctx, command)
	if err != nil {
		r.logger.Debug("command lookup failed", LOG_FIELD_COMMAND, command, "error", err)
		return resolution, err
	}
	if !found {
		return resolution, nil
	}

	resolution.Found = true
	resolution.Path = path
	resolution.Scope = r.Classify(path)

	r.logger.Debug("command resolved", LOG_FIELD_COMMAND, command, LOG_FIELD_SCOPE, resolution.Scope.String(), "path", path)
	return resolution, nil
}

// Classify decides the scope of a path by containment. The local tree is
// tested first because a project may live under the global home.
func (r *Resolver) Classify(path string) Scope {
	path = filepath.Clean(path)
	if r.project.HasLocalScope(r.global) && r.project.LocalLayout().Contains(path) {
		return ScopeLocal
	}
	if r.global.Contains(path) {
		return ScopeGlobal
	}
	return ScopeSystem
}
