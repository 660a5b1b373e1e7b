package installer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velo/internal/config"
	"velo/internal/paths"
	"velo/internal/testutil"
)

type recordingInspector struct {
	calls map[string]bool
}

func (r *recordingInspector) VerifyInstallation(_ context.Context, pkg Package, checkSymlinks bool) (InstallationStatus, error) {
	if r.calls == nil {
		r.calls = make(map[string]bool)
	}
	r.calls[pkg.String()] = checkSymlinks
	return Installed(), nil
}

func TestShouldCheckSymlinks(t *testing.T) {
	layout := newTestLayout(t)
	install(t, layout, kegFixture{name: "wget", version: "1.24.5"})
	install(t, layout, kegFixture{name: "openssl", version: "3.3.1"})
	install(t, layout, kegFixture{name: "mytool", version: "1.0", asDep: boolPtr(true)})
	install(t, layout, kegFixture{name: "zlib", version: "1.3", asDep: boolPtr(false)})

	verifier := NewVerifier(layout, NewFilesystemInspector(layout), NewClassifier(config.DependencyOverrides{}), nil)

	assert.True(t, verifier.ShouldCheckSymlinks(Package{Name: "wget", Version: "1.24.5"}))
	assert.False(t, verifier.ShouldCheckSymlinks(Package{Name: "openssl", Version: "3.3.1"}))
	assert.False(t, verifier.ShouldCheckSymlinks(Package{Name: "mytool", Version: "1.0"}), "receipt marks it as a dependency")
	assert.True(t, verifier.ShouldCheckSymlinks(Package{Name: "zlib", Version: "1.3"}), "receipt marks it as user-requested")
}

func TestVerifyAll(t *testing.T) {
	layout := newTestLayout(t)
	install(t, layout, kegFixture{name: "wget", version: "1.24.5", executables: []string{"wget"}, linked: true})
	install(t, layout, kegFixture{name: "jq", version: "1.6", executables: []string{"jq"}, linked: true})
	install(t, layout, kegFixture{name: "jq", version: "1.7", executables: []string{"jq"}})
	install(t, layout, kegFixture{name: "openssl", version: "3.3.1", executables: []string{"openssl"}})
	install(t, layout, kegFixture{name: "broken", version: "0.1", noReceipt: true})
	testutil.MkdirAll(t, filepath.Join(layout.Cellar, ".staging", "x"))

	verifier := NewVerifier(layout, NewFilesystemInspector(layout), NewClassifier(config.DependencyOverrides{}), nil)
	inventory, err := verifier.VerifyAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, inventory.PackageCount)
	require.Len(t, inventory.Results, 5)

	got := make([]string, 0, len(inventory.Results))
	for _, r := range inventory.Results {
		got = append(got, r.Package.String()+"="+r.Status.Kind.String())
	}
	assert.Equal(t, []string{
		"broken 0.1=corrupted",
		"jq 1.6=installed",
		"jq 1.7=installed",
		"openssl 3.3.1=installed",
		"wget 1.24.5=installed",
	}, got)
	assert.Equal(t, 1, inventory.Problems())
	assert.False(t, inventory.Results[3].CheckedSymlinks)
}

func TestVerifyAllPassesClassifierVerdictToInspector(t *testing.T) {
	layout := newTestLayout(t)
	install(t, layout, kegFixture{name: "wget", version: "1.0"})
	install(t, layout, kegFixture{name: "python@3.12", version: "3.12.4"})

	inspector := &recordingInspector{}
	verifier := NewVerifier(layout, inspector, NewClassifier(config.DependencyOverrides{ForceDependency: []string{"wget"}}), nil)

	_, err := verifier.VerifyAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]bool{
		"wget 1.0":           false,
		"python@3.12 3.12.4": false,
	}, inspector.calls)
}

func TestVerifyAllMissingCellar(t *testing.T) {
	layout := paths.NewLayout(filepath.Join(testutil.TempDir(t), "nowhere"))
	verifier := NewVerifier(layout, NewFilesystemInspector(layout), nil, nil)

	_, err := verifier.VerifyAll(context.Background())
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestVerifyAllEmptyCellar(t *testing.T) {
	layout := newTestLayout(t)
	verifier := NewVerifier(layout, NewFilesystemInspector(layout), nil, nil)

	inventory, err := verifier.VerifyAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, inventory.PackageCount)
	assert.Empty(t, inventory.Results)
}
