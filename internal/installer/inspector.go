package installer

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"velo/internal/paths"
)

// Inspector owns the definition of "correctly installed".
type Inspector interface {
	// VerifyInstallation returns the status of pkg. err is reserved for cases
	// where no verdict could be reached (e.g. permission denied).
	VerifyInstallation(ctx context.Context, pkg Package, checkSymlinks bool) (InstallationStatus, error)
}

// FilesystemInspector checks a keg, its receipt and, optionally, the links
// that expose its executables in the bin directory.
type FilesystemInspector struct {
	layout paths.Layout
}

func NewFilesystemInspector(layout paths.Layout) *FilesystemInspector {
	return &FilesystemInspector{layout: layout}
}

func (i *FilesystemInspector) VerifyInstallation(ctx context.Context, pkg Package, checkSymlinks bool) (InstallationStatus, error) {
	if err := ctx.Err(); err != nil {
		return NotInstalled(), err
	}

	keg := i.layout.KegPath(pkg.Name, pkg.Version)

	info, err := os.Stat(keg)
	if errors.Is(err, fs.ErrNotExist) {
		return NotInstalled(), nil
	}
	if err != nil {
		return NotInstalled(), NewVerificationError(pkg.String(), CheckExistence, keg, err)
	}
	if !info.IsDir() {
		return Corruptedf(REASON_NOT_A_DIRECTORY, keg), nil
	}

	if status, err := i.verifyReceipt(pkg, keg); err != nil || !status.IsInstalled() {
		return status, err
	}

	if !checkSymlinks {
		return Installed(), nil
	}
	return i.verifySymlinks(pkg, keg)
}

func (i *FilesystemInspector) verifyReceipt(pkg Package, keg string) (InstallationStatus, error) {
	receipt, err := ReadReceipt(keg)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Corruptedf(REASON_RECEIPT_MISSING, ReceiptFileName), nil
	case errors.Is(err, fs.ErrPermission):
		return NotInstalled(), NewVerificationError(pkg.String(), CheckReceipt, ReceiptPath(keg), err)
	case err != nil:
		return Corruptedf(REASON_RECEIPT_INVALID, ReceiptFileName, err), nil
	}

	if receipt.Name != pkg.Name || receipt.Version != pkg.Version {
		return Corruptedf(REASON_RECEIPT_MISMATCH, receipt.Name, receipt.Version), nil
	}
	return Installed(), nil
}

func (i *FilesystemInspector) verifySymlinks(pkg Package, keg string) (InstallationStatus, error) {
	executables, err := kegExecutables(filepath.Join(keg, KegBinDirName))
	if err != nil {
		return NotInstalled(), NewVerificationError(pkg.String(), CheckSymlinks, keg, err)
	}

	packageDir, err := filepath.EvalSymlinks(filepath.Join(i.layout.Cellar, pkg.Name))
	if err != nil {
		return NotInstalled(), NewVerificationError(pkg.String(), CheckSymlinks, keg, err)
	}

	for _, exe := range executables {
		link := filepath.Join(i.layout.Bin, exe)

		info, err := os.Lstat(link)
		if errors.Is(err, fs.ErrNotExist) {
			return Corruptedf(REASON_SYMLINK_MISSING, exe, i.layout.Bin), nil
		}
		if err != nil {
			return NotInstalled(), NewVerificationError(pkg.String(), CheckSymlinks, link, err)
		}
		if info.Mode()&fs.ModeSymlink == 0 {
			return Corruptedf(REASON_SYMLINK_NOT_LINK, link), nil
		}

		target, err := filepath.EvalSymlinks(link)
		if err != nil {
			return Corruptedf(REASON_SYMLINK_BROKEN, link), nil
		}
		// Another installed version of the same package may own the link.
		if !paths.IsWithin(packageDir, target) {
			return Corruptedf(REASON_SYMLINK_FOREIGN, link, target), nil
		}
	}

	return Installed(), nil
}

// kegExecutables lists the files a keg exposes. A keg without a bin
// directory exposes nothing.
func kegExecutables(binDir string) ([]string, error) {
	entries, err := os.ReadDir(binDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if paths.IsHidden(entry.Name()) || entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		if isExecutable(entry.Name(), info) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func isExecutable(name string, info fs.FileInfo) bool {
	if info.Mode()&fs.ModeSymlink != 0 {
		return true
	}
	if runtime.GOOS == "windows" {
		ext := strings.ToLower(filepath.Ext(name))
		return ext == ".exe" || ext == ".cmd" || ext == ".bat"
	}
	return info.Mode().Perm()&0111 != 0
}
