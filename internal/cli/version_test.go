package cli

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velo/internal/version"
)

func TestVersionCommand(t *testing.T) {
	result := ExecuteForTest(t, CmdVersion)
	require.NoError(t, result.Err)

	assert.Contains(t, result.Stdout, "Velo Version Information")
	assert.Contains(t, result.Stdout, "Version:      "+version.Version)
	assert.Contains(t, result.Stdout, "Go Version:   "+runtime.Version())
}

func TestVersionCommandJSON(t *testing.T) {
	result := ExecuteForTest(t, CmdVersion, "--json")
	require.NoError(t, result.Err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(result.Stdout), &info))
	assert.Equal(t, version.Version, info.Version)
	assert.Equal(t, runtime.GOOS, info.Platform)
	assert.Equal(t, runtime.GOARCH, info.Architecture)
}
