package doctor

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"velo/internal/config"
	"velo/internal/installer"
	"velo/internal/paths"
	"velo/internal/platform"
	"velo/internal/testutil"
)

const testFreeSpace = 50 << 30

func healthyProbes() Probes {
	return Probes{
		Architecture: func(context.Context) (string, error) { return "arm64", nil },
		OSVersion: func(context.Context) (platform.Version, error) {
			return platform.ParseVersion("14.2.1")
		},
		FreeSpace: func(string) (uint64, error) { return testFreeSpace, nil },
		InPath:    func(string) bool { return true },
	}
}

type testEnv struct {
	home    string
	workDir string
	cfg     *config.Config
	layout  paths.Layout
	locator *testutil.MockLocator
	probes  Probes
	verbose bool
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	root := testutil.TempDir(t)
	home := filepath.Join(root, "home", ".velo")
	workDir := filepath.Join(root, "work")
	testutil.MkdirAll(t, workDir)

	cfg := config.Default(home)
	cfg.ManifestFile = "velo-doctor-test.json"
	cfg.LockFile = "velo-doctor-test.lock"

	return &testEnv{
		home:    home,
		workDir: workDir,
		cfg:     cfg,
		layout:  paths.NewLayout(home),
		locator: &testutil.MockLocator{Paths: map[string]string{}, Failures: map[string]error{}},
		probes:  healthyProbes(),
	}
}

func (e *testEnv) bootstrap(t *testing.T) {
	t.Helper()
	_, err := e.layout.EnsureDirectories()
	require.NoError(t, err)
}

func (e *testEnv) install(t *testing.T, name, version string, executables ...string) string {
	t.Helper()
	keg := e.layout.KegPath(name, version)
	testutil.MkdirAll(t, keg)

	data, err := json.Marshal(installer.Receipt{Name: name, Version: version})
	require.NoError(t, err)
	testutil.WriteFile(t, installer.ReceiptPath(keg), string(data))

	for _, exe := range executables {
		target := filepath.Join(keg, installer.KegBinDirName, exe)
		testutil.WriteFile(t, target, "#!/bin/sh\n")
		require.NoError(t, os.Chmod(target, 0755))
		require.NoError(t, os.Symlink(target, filepath.Join(e.layout.Bin, exe)))
	}
	return keg
}

func (e *testEnv) doctor(t *testing.T) *Doctor {
	t.Helper()
	d, err := New(Options{
		Config:     e.cfg,
		Probes:     e.probes,
		Locator:    e.locator,
		WorkingDir: e.workDir,
		GOOS:       "darwin",
		Verbose:    e.verbose,
	})
	require.NoError(t, err)
	return d
}

func sectionNames(report *Report) []string {
	names := make([]string, 0, len(report.Sections))
	for _, s := range report.Sections {
		names = append(names, s.Name)
	}
	return names
}

func severities(outcomes []CheckOutcome) []Severity {
	out := make([]Severity, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, o.Severity)
	}
	return out
}
