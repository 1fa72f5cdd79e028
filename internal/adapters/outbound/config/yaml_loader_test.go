package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfdeploy/selfdeploy/internal/adapters/outbound/config"
	"github.com/selfdeploy/selfdeploy/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(content), 0o644))
	return dir
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.New().Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultWeights(), cfg.EffectiveWeights())
	assert.True(t, cfg.PreserveCI())
	assert.Empty(t, cfg.OutputDir)
}

func TestLoad_FullConfig(t *testing.T) {
	dir := writeConfig(t, `
templates_dir: ./templates
output_dir: ./out
preserve_existing_ci: false
exclude_paths:
  - generated
weights:
  manifest: 20
  extension: 5
  secondary: 2
`)

	cfg, err := config.New().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "./templates", cfg.TemplatesDir)
	assert.Equal(t, "./out", cfg.OutputDir)
	assert.False(t, cfg.PreserveCI())
	assert.Equal(t, []string{"generated"}, cfg.ExcludePaths)
	assert.Equal(t, domain.Weights{Manifest: 20, Extension: 5, Secondary: 2}, cfg.EffectiveWeights())
}

func TestLoad_ExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: ./out\n"), 0o644))

	cfg, err := config.NewWithFile(path).Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "./out", cfg.OutputDir)
}

func TestLoad_ExplicitFileMissingIsFatal(t *testing.T) {
	loader := config.NewWithFile(filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := loader.Load(t.TempDir())
	assert.Error(t, err)
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	dir := writeConfig(t, "weights: [not a map")

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.FileName)
}

func TestLoad_InvalidWeightOrderingFails(t *testing.T) {
	dir := writeConfig(t, `
weights:
  manifest: 2
  extension: 5
  secondary: 1
`)

	_, err := config.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest weight")
}

func TestLoad_NonPositiveWeightFails(t *testing.T) {
	dir := writeConfig(t, `
weights:
  manifest: 10
  extension: 0
  secondary: 1
`)

	_, err := config.New().Load(dir)
	assert.Error(t, err)
}
