package platform

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeDiskSpace(t *testing.T) {
	if GetCurrentPlatform() == PlatformUnknown {
		t.Skip("no disk probe on this platform")
	}

	free, err := FreeDiskSpace(t.TempDir())
	require.NoError(t, err)
	assert.Greater(t, free, uint64(0))
}

func TestFreeDiskSpaceMissingPath(t *testing.T) {
	_, err := FreeDiskSpace(filepath.Join(t.TempDir(), "does", "not", "exist"))
	assert.Error(t, err)
}
