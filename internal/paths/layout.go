// Package paths describes the on-disk layout of a velo installation.
package paths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	CellarDirName = "Cellar"
	BinDirName    = "bin"
	CacheDirName  = "cache"
	TapsDirName   = "taps"
	LogsDirName   = "logs"
	TmpDirName    = "tmp"

	// LocalDirName is the per-project velo directory next to the manifest.
	LocalDirName = ".velo"
)

// Directory is one named entry of a Layout.
type Directory struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Layout is the fixed set of working directories under a velo home.
type Layout struct {
	Home   string
	Cellar string
	Bin    string
	Cache  string
	Taps   string
	Logs   string
	Tmp    string
}

// NewLayout derives every directory from home.
func NewLayout(home string) Layout {
	home = filepath.Clean(home)
	return Layout{
		Home:   home,
		Cellar: filepath.Join(home, CellarDirName),
		Bin:    filepath.Join(home, BinDirName),
		Cache:  filepath.Join(home, CacheDirName),
		Taps:   filepath.Join(home, TapsDirName),
		Logs:   filepath.Join(home, LogsDirName),
		Tmp:    filepath.Join(home, TmpDirName),
	}
}

// LocalLayout is the layout of a project-scoped installation rooted at projectRoot.
func LocalLayout(projectRoot string) Layout {
	return NewLayout(filepath.Join(projectRoot, LocalDirName))
}

// Directories lists the layout in declaration order. Reports rely on this order.
func (l Layout) Directories() []Directory {
	return []Directory{
		{Name: "Velo home", Path: l.Home},
		{Name: "Cellar", Path: l.Cellar},
		{Name: "Bin", Path: l.Bin},
		{Name: "Cache", Path: l.Cache},
		{Name: "Taps", Path: l.Taps},
		{Name: "Logs", Path: l.Logs},
		{Name: "Temp", Path: l.Tmp},
	}
}

// KegPath is the directory holding one installed version of a package.
func (l Layout) KegPath(name, version string) string {
	return filepath.Join(l.Cellar, name, version)
}

// Contains reports whether path lies inside the layout's home.
func (l Layout) Contains(path string) bool {
	return IsWithin(l.Home, path)
}

// EnsureDirectories creates any missing directory and returns the ones it
// created. Existing directories are left untouched, so a second call on a
// complete layout returns an empty slice.
func (l Layout) EnsureDirectories() ([]Directory, error) {
	var created []Directory
	var errs []error

	for _, dir := range l.Directories() {
		info, err := os.Stat(dir.Path)
		if err == nil {
			if !info.IsDir() {
				errs = append(errs, fmt.Errorf("%s: %s exists and is not a directory", dir.Name, dir.Path))
			}
			continue
		}
		if !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("%s: %w", dir.Name, err))
			continue
		}
		if err := os.MkdirAll(dir.Path, 0755); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", dir.Name, err))
			continue
		}
		created = append(created, dir)
	}

	return created, errors.Join(errs...)
}

// InstalledPackages lists the package directories in the cellar, sorted,
// skipping hidden entries.
func (l Layout) InstalledPackages() ([]string, error) {
	return ListVisibleDirs(l.Cellar)
}

// InstalledVersions lists the versions installed for name. A missing
// package directory yields an empty list.
func (l Layout) InstalledVersions(name string) []string {
	versions, err := ListVisibleDirs(filepath.Join(l.Cellar, name))
	if err != nil {
		return nil
	}
	return versions
}

// ListVisibleDirs returns the sorted names of non-hidden subdirectories of dir.
func ListVisibleDirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if IsHidden(entry.Name()) || !entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// IsWithin reports whether path equals root or lies below it.
func IsWithin(root, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
