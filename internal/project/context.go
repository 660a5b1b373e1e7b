// Package project answers "am I inside a velo project" and how commands
// resolve across the local, global and system scopes.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"velo/internal/paths"
)

// Context describes where the current directory sits relative to a velo
// project. ManifestPath and LockFilePath are set if and only if
// IsProjectContext is true.
type Context struct {
	WorkingDir       string `json:"working_dir"`
	IsProjectContext bool   `json:"is_project_context"`
	ProjectRoot      string `json:"project_root,omitempty"`
	ManifestPath     string `json:"manifest_path,omitempty"`
	LockFilePath     string `json:"lock_file_path,omitempty"`
}

// LocalLayout is the project's own .velo tree. It is only meaningful in a
// project context.
func (c Context) LocalLayout() paths.Layout {
	return paths.LocalLayout(c.ProjectRoot)
}

// HasLocalScope reports whether the project has a store of its own. A
// manifest in the user's home directory puts the local store on top of the
// global home, in which case there is only the global one.
func (c Context) HasLocalScope(global paths.Layout) bool {
	if !c.IsProjectContext {
		return false
	}
	return filepath.Clean(c.LocalLayout().Home) != filepath.Clean(global.Home)
}

// HasLockFile reports whether the lock file exists on disk.
func (c Context) HasLockFile() bool {
	return c.IsProjectContext && fileExists(c.LockFilePath)
}

// HasLocalDir reports whether the project's .velo directory exists.
func (c Context) HasLocalDir() bool {
	return c.IsProjectContext && dirExists(c.LocalLayout().Home)
}

// Detect walks upward from cwd until it finds manifestFile. The directory
// holding the manifest is the project root; the lock file is expected next
// to it.
func Detect(cwd, manifestFile, lockFile string) (Context, error) {
	if cwd == "" {
		cwd = "."
	}
	dir, err := filepath.Abs(cwd)
	if err != nil {
		return Context{}, fmt.Errorf(ERROR_RESOLVE_START_DIR, err)
	}

	ctx := Context{WorkingDir: dir}

	manifest, found, err := findManifest(dir, manifestFile)
	if err != nil || !found {
		return ctx, err
	}

	root := filepath.Dir(manifest)
	ctx.IsProjectContext = true
	ctx.ProjectRoot = root
	ctx.ManifestPath = manifest
	ctx.LockFilePath = filepath.Join(root, lockFile)
	return ctx, nil
}

func findManifest(dir, manifestFile string) (string, bool, error) {
	for {
		candidate := filepath.Join(dir, manifestFile)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", false, NewDetectionError(PHASE_SCANNING, candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
