package platform

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryLockDirExclusive(t *testing.T) {
	if !IsLinux() && !IsMacOS() {
		t.Skip("advisory locks are only taken on linux and macOS")
	}
	dir := t.TempDir()

	unlock, err := TryLockDir(dir)
	require.NoError(t, err)

	_, err = TryLockDir(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLocked))

	require.NoError(t, unlock())

	unlockAgain, err := TryLockDir(dir)
	require.NoError(t, err)
	require.NoError(t, unlockAgain())
}

func TestTryLockDirMissing(t *testing.T) {
	_, err := TryLockDir(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
