package installer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"velo/internal/common"
	"velo/internal/paths"
)

// Verification is the outcome for one installed version.
type Verification struct {
	Package         Package            `json:"package"`
	Status          InstallationStatus `json:"status"`
	CheckedSymlinks bool               `json:"checked_symlinks"`
	Err             error              `json:"-"`
}

// Inventory is the result of verifying a whole cellar.
type Inventory struct {
	PackageCount int
	Results      []Verification
}

// Problems counts results that are not Installed.
func (inv *Inventory) Problems() int {
	n := 0
	for _, r := range inv.Results {
		if r.Err != nil || !r.Status.IsInstalled() {
			n++
		}
	}
	return n
}

// Verifier decides per package whether command links are expected and
// delegates the actual checks to an Inspector.
type Verifier struct {
	layout     paths.Layout
	inspector  Inspector
	classifier *Classifier
	logger     *common.Logger
}

func NewVerifier(layout paths.Layout, inspector Inspector, classifier *Classifier, logger *common.Logger) *Verifier {
	if logger == nil {
		logger = common.NewNopLogger()
	}
	return &Verifier{
		layout:     layout,
		inspector:  inspector,
		classifier: classifier,
		logger:     logger.Named("verifier"),
	}
}

// ShouldCheckSymlinks is false for packages that were installed as
// dependencies: their executables were never linked. A receipt that records
// how the package was installed beats the name heuristic.
func (v *Verifier) ShouldCheckSymlinks(pkg Package) bool {
	if receipt, err := ReadReceipt(v.layout.KegPath(pkg.Name, pkg.Version)); err == nil && receipt.InstalledAsDependency != nil {
		return !*receipt.InstalledAsDependency
	}
	return !v.classifier.IsLikelyDependency(pkg.Name)
}

func (v *Verifier) Verify(ctx context.Context, pkg Package) Verification {
	checkSymlinks := v.ShouldCheckSymlinks(pkg)
	status, err := v.inspector.VerifyInstallation(ctx, pkg, checkSymlinks)

	v.logger.Debug("verified package",
		"package", pkg.Name, "version", pkg.Version,
		"status", status.Kind.String(), "check_symlinks", checkSymlinks)

	return Verification{
		Package:         pkg,
		Status:          status,
		CheckedSymlinks: checkSymlinks,
		Err:             err,
	}
}

// VerifyAll verifies every version of every package in the cellar, in
// name then version order. A missing cellar is reported as
// InstallerErrorTypeNotFound.
func (v *Verifier) VerifyAll(ctx context.Context) (*Inventory, error) {
	packages, err := v.layout.InstalledPackages()
	if errors.Is(err, fs.ErrNotExist) {
		return nil, NewInstallerError(InstallerErrorTypeNotFound, "cellar", v.layout.Cellar, err)
	}
	if errors.Is(err, fs.ErrPermission) {
		return nil, NewInstallerError(InstallerErrorTypePermission, "cellar", v.layout.Cellar, err)
	}
	if err != nil {
		return nil, NewInstallerError(InstallerErrorTypeUnknown, "cellar", fmt.Sprintf("reading %s", v.layout.Cellar), err)
	}

	inventory := &Inventory{PackageCount: len(packages)}
	for _, name := range packages {
		for _, version := range v.layout.InstalledVersions(name) {
			if err := ctx.Err(); err != nil {
				return inventory, err
			}
			inventory.Results = append(inventory.Results, v.Verify(ctx, Package{Name: name, Version: version}))
		}
	}
	return inventory, nil
}

// IsNotFound reports whether err is an InstallerError of type not_found.
func IsNotFound(err error) bool {
	return errors.Is(err, &InstallerError{Type: InstallerErrorTypeNotFound})
}
