package doctor

import (
	"context"

	"velo/internal/paths"
)

// FixReport records what the remediation pass did.
type FixReport struct {
	Attempted bool              `json:"attempted"`
	Created   []paths.Directory `json:"created"`
	Failures  []string          `json:"failures,omitempty"`

	// ManualIntervention is set when problems remain that no fix addresses.
	ManualIntervention bool `json:"manual_intervention"`
}

// Fix repairs what can be repaired safely. Today that is recreating missing
// layout directories, which is idempotent. It never touches package contents.
func (d *Doctor) Fix(_ context.Context, report *Report) *FixReport {
	fixes := &FixReport{Created: []paths.Directory{}}
	if report == nil || !report.HasProblems() {
		return fixes
	}
	fixes.Attempted = true

	created, err := d.layout.EnsureDirectories()
	fixes.Created = append(fixes.Created, created...)
	if err != nil {
		d.logger.Warn("directory remediation failed", "error", err)
		fixes.Failures = append(fixes.Failures, err.Error())
	}
	for _, dir := range created {
		d.logger.Info("created directory", "name", dir.Name, "path", dir.Path)
	}
	if d.held.active {
		// A home created just now is locked before the re-run.
		d.acquireLock()
	}

	for _, outcome := range report.Outcomes() {
		if outcome.Severity >= SeverityWarning && !outcome.Fixable {
			fixes.ManualIntervention = true
			break
		}
	}
	return fixes
}
