package installer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"velo/internal/paths"
	"velo/internal/testutil"
)

type kegFixture struct {
	name        string
	version     string
	executables []string
	linked      bool
	asDep       *bool
	noReceipt   bool
}

func newTestLayout(t *testing.T) paths.Layout {
	t.Helper()
	layout := paths.NewLayout(filepath.Join(testutil.TempDir(t), ".velo"))
	_, err := layout.EnsureDirectories()
	require.NoError(t, err)
	return layout
}

// install lays out a keg the way the installer would.
func install(t *testing.T, layout paths.Layout, f kegFixture) string {
	t.Helper()

	keg := layout.KegPath(f.name, f.version)
	testutil.MkdirAll(t, keg)

	if !f.noReceipt {
		data, err := json.Marshal(Receipt{Name: f.name, Version: f.version, InstalledAsDependency: f.asDep})
		require.NoError(t, err)
		testutil.WriteFile(t, ReceiptPath(keg), string(data))
	}

	for _, exe := range f.executables {
		target := filepath.Join(keg, KegBinDirName, exe)
		testutil.WriteFile(t, target, "#!/bin/sh\n")
		require.NoError(t, os.Chmod(target, 0755))
		if f.linked {
			require.NoError(t, os.Symlink(target, filepath.Join(layout.Bin, exe)))
		}
	}
	return keg
}

func boolPtr(b bool) *bool {
	return &b
}
