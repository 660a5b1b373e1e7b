package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"velo/internal/paths"
)

// PackageEntry is one package in a store with its installed versions.
type PackageEntry struct {
	Name     string   `json:"name"`
	Versions []string `json:"versions"`
}

// Listing is a truncated view of a store. Total counts every package,
// shown or not.
type Listing struct {
	Packages  []PackageEntry `json:"packages"`
	Total     int            `json:"total"`
	Remaining int            `json:"remaining"`
}

func (l Listing) Empty() bool {
	return l.Total == 0
}

// More renders the "... and N more" suffix, or "" when nothing was cut.
func (l Listing) More() string {
	if l.Remaining <= 0 {
		return ""
	}
	return fmt.Sprintf(FORMAT_MORE_PACKAGES, l.Remaining)
}

// Truncate keeps the first limit names and reports how many were dropped.
// A non-positive limit keeps everything.
func Truncate(names []string, limit int) ([]string, int) {
	if limit <= 0 || len(names) <= limit {
		return names, 0
	}
	return names[:limit], len(names) - limit
}

// ListPackages enumerates storeDir (a cellar) in sorted order. A missing
// store is an empty listing, not an error.
func ListPackages(storeDir string, limit int) (Listing, error) {
	names, err := paths.ListVisibleDirs(storeDir)
	if errors.Is(err, os.ErrNotExist) {
		return Listing{}, nil
	}
	if err != nil {
		return Listing{}, NewProjectError(ProjectErrorTypeFileSystem, "", ERROR_READ_PACKAGE_STORE, err).WithPath(storeDir)
	}

	shown, remaining := Truncate(names, limit)
	listing := Listing{
		Packages:  make([]PackageEntry, 0, len(shown)),
		Total:     len(names),
		Remaining: remaining,
	}
	for _, name := range shown {
		versions, _ := paths.ListVisibleDirs(filepath.Join(storeDir, name))
		listing.Packages = append(listing.Packages, PackageEntry{Name: name, Versions: versions})
	}
	return listing, nil
}
