// Package doctor runs the velo environment diagnostics and the remediation
// pass behind `velo doctor`.
package doctor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"velo/internal/common"
	"velo/internal/config"
	"velo/internal/installer"
	"velo/internal/paths"
	"velo/internal/platform"
)

// Options wires a Doctor. Config, Probes and Locator are required; the rest
// have defaults.
type Options struct {
	Config  *config.Config
	Probes  Probes
	Locator platform.CommandLocator

	// Layout defaults to paths.NewLayout(Config.Home).
	Layout *paths.Layout
	// Inspector defaults to a FilesystemInspector over Layout.
	Inspector installer.Inspector

	WorkingDir string
	GOOS       string
	Verbose    bool
	Logger     *common.Logger
}

// Doctor runs a fixed, ordered list of independent checks. It is not safe
// for concurrent use.
type Doctor struct {
	cfg        *config.Config
	layout     paths.Layout
	probes     Probes
	locator    platform.CommandLocator
	verifier   *installer.Verifier
	workingDir string
	goos       string
	verbose    bool
	logger     *common.Logger
	held       heldLock
}

// heldLock is the home-directory lock kept between runs after Lock.
type heldLock struct {
	active  bool
	release func() error
	notice  *CheckOutcome
}

func New(opts Options) (*Doctor, error) {
	if opts.Config == nil {
		return nil, errors.New("doctor: config is required")
	}
	if opts.Locator == nil {
		return nil, errors.New("doctor: command locator is required")
	}
	if opts.Probes.Architecture == nil || opts.Probes.OSVersion == nil || opts.Probes.FreeSpace == nil || opts.Probes.InPath == nil {
		return nil, errors.New("doctor: every probe must be set")
	}

	logger := opts.Logger
	if logger == nil {
		logger = common.NewNopLogger()
	}

	layout := paths.NewLayout(opts.Config.Home)
	if opts.Layout != nil {
		layout = *opts.Layout
	}

	inspector := opts.Inspector
	if inspector == nil {
		inspector = installer.NewFilesystemInspector(layout)
	}

	workingDir := opts.WorkingDir
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("doctor: resolving working directory: %w", err)
		}
		workingDir = wd
	}

	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	classifier := installer.NewClassifier(opts.Config.Dependencies)

	return &Doctor{
		cfg:        opts.Config,
		layout:     layout,
		probes:     opts.Probes,
		locator:    opts.Locator,
		verifier:   installer.NewVerifier(layout, inspector, classifier, logger),
		workingDir: workingDir,
		goos:       goos,
		verbose:    opts.Verbose,
		logger:     logger.Named("doctor"),
	}, nil
}

func (d *Doctor) Layout() paths.Layout {
	return d.layout
}

// Checks returns the checks in the order they run and are reported.
func (d *Doctor) Checks() []Check {
	return []Check{
		NewCheck(SECTION_ARCHITECTURE, single(d.checkArchitecture)),
		NewCheck(SECTION_OS_VERSION, single(d.checkOSVersion)),
		NewCheck(SECTION_DIRECTORIES, d.checkDirectories),
		NewCheck(SECTION_PATH, single(d.checkPath)),
		NewCheck(SECTION_PERMISSIONS, single(d.checkPermissions)),
		NewCheck(SECTION_PACKAGES, d.checkPackages),
		NewCheck(SECTION_DISK_SPACE, single(d.checkDiskSpace)),
		NewCheck(SECTION_CONTEXT, d.checkContext),
	}
}

// Run executes every check sequentially. A failing check never stops the
// ones after it.
func (d *Doctor) Run(ctx context.Context) *Report {
	report := &Report{
		StartedAt: time.Now(),
		Metadata: map[string]string{
			"platform":    d.goos + "/" + runtime.GOARCH,
			"home":        d.layout.Home,
			"working dir": d.workingDir,
		},
	}

	notice, done := d.acquireLock()
	defer done()
	if notice != nil {
		report.Notices = append(report.Notices, *notice)
	}

	for _, check := range d.Checks() {
		started := time.Now()
		outcomes := runCheck(ctx, check)
		d.logger.With("check", check.Name()).Debug("check finished", "outcomes", len(outcomes), "duration", time.Since(started))
		report.Sections = append(report.Sections, Section{Name: check.Name(), Outcomes: outcomes})
	}

	report.Duration = time.Since(report.StartedAt)
	return report
}

func runCheck(ctx context.Context, check Check) (outcomes []CheckOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcomes = append(outcomes, Issue(check.Name(), MSG_CHECK_PANICKED, check.Name(), r))
		}
	}()
	return check.Run(ctx)
}

// Lock keeps the home-directory lock across every Run and Fix until the
// returned unlock is called. A home that does not exist yet is locked by
// the first Run after it appears.
func (d *Doctor) Lock() (unlock func()) {
	d.held = heldLock{active: true}
	d.acquireLock()
	return func() {
		release := d.held.release
		d.held = heldLock{}
		d.releaseLock(release)
	}
}

// acquireLock returns the lock notice for a run and the function that ends
// the run's hold. Under Lock the hold outlives the run.
func (d *Doctor) acquireLock() (*CheckOutcome, func()) {
	if d.held.release != nil || d.held.notice != nil {
		return d.held.notice, func() {}
	}

	release, notice := d.lock()
	if d.held.active {
		d.held.release, d.held.notice = release, notice
		return notice, func() {}
	}
	return notice, func() { d.releaseLock(release) }
}

func (d *Doctor) releaseLock(release func() error) {
	if release == nil {
		return
	}
	if err := release(); err != nil {
		d.logger.Warn("failed to release lock", "error", err)
	}
}

// lock takes an advisory lock on the home directory. A missing home is not
// locked; the directories check reports it.
func (d *Doctor) lock() (func() error, *CheckOutcome) {
	if !isDir(d.layout.Home) {
		return nil, nil
	}

	release, err := platform.TryLockDir(d.layout.Home)
	switch {
	case errors.Is(err, platform.ErrLocked):
		notice := Warning(SECTION_DIRECTORIES, MSG_LOCKED, d.layout.Home)
		return nil, &notice
	case err != nil:
		d.logger.Warn(fmt.Sprintf(MSG_LOCK_FAILED, d.layout.Home, err))
		return nil, nil
	}
	return release, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
