package project

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velo/internal/paths"
	"velo/internal/testutil"
)

func TestScopeStrings(t *testing.T) {
	assert.Equal(t, "local", ScopeLocal.String())
	assert.Equal(t, "global", ScopeGlobal.String())
	assert.Equal(t, "system", ScopeSystem.String())
	assert.Equal(t, FORMAT_SCOPE_SYSTEM, ScopeSystem.Label())

	text, err := ScopeGlobal.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "global", string(text))
}

func TestResolverClassify(t *testing.T) {
	home := filepath.Join("/", "home", "me", ".velo")
	projectRoot := filepath.Join("/", "work", "app")
	global := paths.NewLayout(home)
	inProject := Context{IsProjectContext: true, ProjectRoot: projectRoot}

	tests := []struct {
		name     string
		project  Context
		path     string
		expected Scope
	}{
		{"local bin", inProject, filepath.Join(projectRoot, ".velo", "bin", "node"), ScopeLocal},
		{"global bin", inProject, filepath.Join(home, "bin", "wget"), ScopeGlobal},
		{"system", inProject, filepath.Join("/", "usr", "bin", "python"), ScopeSystem},
		{"local outside project context", Context{}, filepath.Join(projectRoot, ".velo", "bin", "node"), ScopeSystem},
		{"sibling of home", inProject, filepath.Join("/", "home", "me", ".velo-old", "bin", "wget"), ScopeSystem},
		{"project at user home", Context{IsProjectContext: true, ProjectRoot: filepath.Join("/", "home", "me")}, filepath.Join(home, "bin", "wget"), ScopeGlobal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResolver(&testutil.MockLocator{}, global, tt.project, nil)
			assert.Equal(t, tt.expected, resolver.Classify(tt.path))
		})
	}
}

func TestProjectAtUserHomeSharesGlobalStore(t *testing.T) {
	global := paths.NewLayout(filepath.Join("/", "home", "me", ".velo"))
	atHome := Context{IsProjectContext: true, ProjectRoot: filepath.Join("/", "home", "me")}
	elsewhere := Context{IsProjectContext: true, ProjectRoot: filepath.Join("/", "work", "app")}

	assert.False(t, atHome.HasLocalScope(global))
	assert.True(t, elsewhere.HasLocalScope(global))
	assert.False(t, Context{}.HasLocalScope(global))
	assert.Equal(t, []Scope{ScopeGlobal, ScopeSystem}, ResolveScopes(atHome, global))
	assert.Equal(t, []Scope{ScopeLocal, ScopeGlobal, ScopeSystem}, ResolveScopes(elsewhere, global))
}

func TestResolverResolve(t *testing.T) {
	home := filepath.Join("/", "home", "me", ".velo")
	locator := &testutil.MockLocator{
		Paths: map[string]string{
			"wget": filepath.Join(home, "bin", "wget"),
			"node": filepath.Join("/", "usr", "local", "bin", "node"),
		},
		Failures: map[string]error{
			"python": errors.New("which: timed out"),
		},
	}
	resolver := NewResolver(locator, paths.NewLayout(home), Context{}, nil)
	ctx := context.Background()

	wget, err := resolver.Resolve(ctx, "wget")
	require.NoError(t, err)
	assert.True(t, wget.Found)
	assert.Equal(t, ScopeGlobal, wget.Scope)

	node, err := resolver.Resolve(ctx, "node")
	require.NoError(t, err)
	assert.Equal(t, ScopeSystem, node.Scope)

	missing, err := resolver.Resolve(ctx, "rg")
	require.NoError(t, err)
	assert.False(t, missing.Found)
	assert.Empty(t, missing.Path)

	_, err = resolver.Resolve(ctx, "python")
	assert.Error(t, err)
}
