package doctor

import (
	"context"
	"fmt"
	"strings"

	"velo/internal/paths"
	"velo/internal/platform"
	"velo/internal/project"
)

// checkContext describes the project context, both package stores and how
// the sample commands resolve. Only unreadable state and probe timeouts
// count as findings; everything else is informational.
func (d *Doctor) checkContext(ctx context.Context) []CheckOutcome {
	outcomes := []CheckOutcome{
		Ok(SECTION_CONTEXT, MSG_CTX_CWD, d.workingDir).WithIcon(ICON_LOCATION),
	}

	pctx, err := project.Detect(d.workingDir, d.cfg.ManifestFile, d.cfg.LockFile)
	if err != nil {
		outcomes = append(outcomes, Warning(SECTION_CONTEXT, MSG_CTX_DETECT_FAILED, err))
	}

	if pctx.IsProjectContext {
		outcomes = append(outcomes, d.projectOutcomes(pctx)...)
		if pctx.HasLocalScope(d.layout) {
			outcomes = append(outcomes, d.listingOutcome("local", MSG_CTX_LOCAL_PACKAGES, ICON_PACKAGE, pctx.LocalLayout()))
		}
	} else {
		outcomes = append(outcomes, Info(SECTION_CONTEXT, MSG_CTX_GLOBAL, d.cfg.ManifestFile).WithDetails(MSG_CTX_INIT_HINT))
	}

	outcomes = append(outcomes, d.listingOutcome("global", MSG_CTX_GLOBAL_PACKAGES, ICON_GLOBE, d.layout))
	outcomes = append(outcomes, d.resolutionOutcomes(ctx, pctx)...)
	return outcomes
}

func (d *Doctor) projectOutcomes(pctx project.Context) []CheckOutcome {
	outcomes := []CheckOutcome{
		Ok(SECTION_CONTEXT, MSG_CTX_PROJECT, d.cfg.ManifestFile),
		Ok(SECTION_CONTEXT, MSG_CTX_ROOT, pctx.ProjectRoot).WithIcon(ICON_FOLDER),
	}

	manifestLine := Ok(SECTION_CONTEXT, MSG_CTX_FILE, d.cfg.ManifestFile, pctx.ManifestPath, ICON_PRESENT).WithIcon(ICON_FILE)
	manifest, err := project.LoadManifest(pctx.ManifestPath)
	if err != nil {
		outcomes = append(outcomes, manifestLine, Warning(SECTION_CONTEXT, MSG_CTX_MANIFEST_BAD, d.cfg.ManifestFile, err))
	} else {
		manifestLine = manifestLine.WithDetails(fmt.Sprintf(MSG_CTX_MANIFEST_DEPS, manifest.Name, len(manifest.Dependencies)))
		if names := manifest.DependencyNames(); len(names) > 0 {
			manifestLine = manifestLine.WithDetails(fmt.Sprintf(MSG_CTX_DEPENDENCIES, strings.Join(names, ", ")))
		}
		outcomes = append(outcomes, manifestLine)
	}

	outcomes = append(outcomes,
		Ok(SECTION_CONTEXT, MSG_CTX_FILE, d.cfg.LockFile, pctx.LockFilePath, presence(pctx.HasLockFile())).WithIcon(ICON_LOCK),
		Ok(SECTION_CONTEXT, MSG_CTX_LOCAL_DIR, pctx.LocalLayout().Home, presence(pctx.HasLocalDir())).WithIcon(ICON_DIR),
	)
	return outcomes
}

func (d *Doctor) listingOutcome(scope, title, icon string, layout paths.Layout) CheckOutcome {
	listing, err := project.ListPackages(layout.Cellar, d.cfg.ListingLimit)
	if err != nil {
		return Warning(SECTION_CONTEXT, MSG_CTX_LIST_FAILED, scope, err)
	}

	outcome := Ok(SECTION_CONTEXT, "%s", title).WithIcon(icon)
	if listing.Empty() {
		return outcome.WithDetails(fmt.Sprintf(MSG_CTX_NO_PACKAGES, scope))
	}
	for _, pkg := range listing.Packages {
		outcome = outcome.WithDetails(fmt.Sprintf(MSG_CTX_PACKAGE_LINE, pkg.Name, strings.Join(pkg.Versions, ", ")))
	}
	if more := listing.More(); more != "" {
		outcome = outcome.WithDetails(more)
	}
	return outcome
}

func (d *Doctor) resolutionOutcomes(ctx context.Context, pctx project.Context) []CheckOutcome {
	report := Ok(SECTION_CONTEXT, MSG_CTX_RESOLUTION).WithIcon(ICON_ROUTE)

	for i, scope := range project.ResolveScopes(pctx, d.layout) {
		report = report.WithDetails(fmt.Sprintf(MSG_CTX_SCOPE_LINE, i+1, scope.Label(), d.scopeLocation(scope, pctx)))
	}

	var warnings []CheckOutcome
	resolver := project.NewResolver(d.locator, d.layout, pctx, d.logger)
	for _, command := range d.cfg.SampleCommands {
		resolution, err := resolver.Resolve(ctx, command)
		switch {
		case err != nil && platform.IsTimeout(err):
			warnings = append(warnings, Warning(SECTION_CONTEXT, MSG_CTX_LOOKUP_FAILED, command, err))
		case err != nil:
			report = report.WithDetails(fmt.Sprintf(MSG_CTX_LOOKUP_FAILED, command, err))
		case !resolution.Found:
			report = report.WithDetails(fmt.Sprintf(MSG_CTX_NOT_FOUND, command))
		default:
			report = report.WithDetails(fmt.Sprintf(MSG_CTX_RESOLVED, command, resolution.Scope, resolution.Path))
		}
	}

	return append([]CheckOutcome{report}, warnings...)
}

func (d *Doctor) scopeLocation(scope project.Scope, pctx project.Context) string {
	switch scope {
	case project.ScopeLocal:
		bin := pctx.LocalLayout().Bin
		if !isDir(bin) {
			return MSG_CTX_NOT_CONFIGURED
		}
		return bin
	case project.ScopeGlobal:
		return d.layout.Bin
	default:
		return MSG_CTX_SYSTEM_DIRS
	}
}

func presence(ok bool) string {
	if ok {
		return ICON_PRESENT
	}
	return ICON_ABSENT
}
