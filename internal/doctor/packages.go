package doctor

import (
	"context"

	"velo/internal/installer"
)

// checkPackages verifies every installed version. Installed packages are
// listed individually only in verbose mode.
func (d *Doctor) checkPackages(ctx context.Context) []CheckOutcome {
	inventory, err := d.verifier.VerifyAll(ctx)
	if installer.IsNotFound(err) {
		// The directories check already reports the missing cellar.
		return []CheckOutcome{Info(SECTION_PACKAGES, MSG_NO_PACKAGES)}
	}

	var outcomes []CheckOutcome
	if inventory != nil {
		if inventory.PackageCount == 0 && err == nil {
			return []CheckOutcome{Info(SECTION_PACKAGES, MSG_NO_PACKAGES)}
		}
		for _, result := range inventory.Results {
			if outcome, show := d.packageOutcome(result); show {
				outcomes = append(outcomes, outcome)
			}
		}
	}

	if err != nil {
		d.logger.Warn("package verification aborted", "error", err)
		return append(outcomes, Issue(SECTION_PACKAGES, MSG_PACKAGES_FAILED, err))
	}

	if inventory.Problems() == 0 && !d.verbose {
		outcomes = append(outcomes, Ok(SECTION_PACKAGES, MSG_ALL_PACKAGES_OK, inventory.PackageCount))
	}
	return outcomes
}

func (d *Doctor) packageOutcome(result installer.Verification) (CheckOutcome, bool) {
	pkg := result.Package
	label := pkg.String()

	if result.Err != nil {
		return Issue(label, MSG_PACKAGE_UNVERIFIED, pkg.Name, pkg.Version, result.Err), true
	}

	switch result.Status.Kind {
	case installer.StatusInstalled:
		return Ok(label, MSG_PACKAGE_OK, pkg.Name, pkg.Version), d.verbose
	case installer.StatusCorrupted:
		return Issue(label, MSG_PACKAGE_BROKEN, pkg.Name, pkg.Version, result.Status.Reason), true
	default:
		return Issue(label, MSG_PACKAGE_BROKEN, pkg.Name, pkg.Version, installer.REASON_NOT_INSTALLED_MSG), true
	}
}
