package templates_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfdeploy/selfdeploy/internal/adapters/outbound/templates"
	"github.com/selfdeploy/selfdeploy/internal/domain"
	"github.com/selfdeploy/selfdeploy/internal/domain/render"
)

var templateKeys = []string{
	render.KeyJava, render.KeyGo, render.KeyNodeBackend, render.KeyNodeFrontend,
	render.KeyPython, render.KeyGeneric,
}

func TestLookup_EveryDefaultKeyResolves(t *testing.T) {
	store := templates.New("")

	for _, key := range templateKeys {
		ci, err := store.Lookup(render.CITemplatePath(key))
		require.NoError(t, err, "ci template for %s", key)
		assert.Contains(t, ci, "stages:")

		docker, err := store.Lookup(render.DockerfileTemplatePath(key))
		require.NoError(t, err, "dockerfile template for %s", key)
		assert.Contains(t, docker, "FROM")
	}

	sonar, err := store.Lookup(render.SonarTemplatePath)
	require.NoError(t, err)
	assert.Contains(t, sonar, "sonar.projectKey")
}

func TestLookup_OverrideDirWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "ci"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ci", "go.yml.tmpl"), []byte("custom: true\n"), 0o644))

	store := templates.New(dir)

	got, err := store.Lookup(render.CITemplatePath(render.KeyGo))
	require.NoError(t, err)
	assert.Equal(t, "custom: true\n", got)

	// Keys absent from the override dir still fall through to defaults.
	fallback, err := store.Lookup(render.CITemplatePath(render.KeyJava))
	require.NoError(t, err)
	assert.Contains(t, fallback, "stages:")
}

func TestLookup_UnknownKey(t *testing.T) {
	store := templates.New("")

	_, err := store.Lookup("ci/rust.yml.tmpl")
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
}
