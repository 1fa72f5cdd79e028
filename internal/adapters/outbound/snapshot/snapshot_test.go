package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selfdeploy/selfdeploy/internal/adapters/outbound/snapshot"
	"github.com/selfdeploy/selfdeploy/internal/domain"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestLoad_SortedRelativeFiles(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"go.mod":        "module x",
		"cmd/main.go":   "package main",
		"internal/a.go": "package internal",
	})

	snap, err := snapshot.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"cmd/main.go", "go.mod", "internal/a.go"}, snap.Files())
	assert.True(t, snap.Exists("go.mod"))
	assert.False(t, snap.Exists("missing.txt"))
}

func TestLoad_SkipsHeavyDirectories(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"main.go":                   "package main",
		".git/config":               "[core]",
		"node_modules/pkg/index.js": "x",
		"target/classes/App.class":  "x",
		"__pycache__/mod.pyc":       "x",
	})

	snap, err := snapshot.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, snap.Files())
}

func TestLoad_CustomExcludes(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"main.go":          "package main",
		"generated/gen.go": "package generated",
	})

	snap, err := snapshot.Load(dir, "generated/")
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, snap.Files())
}

func TestLoad_MissingRoot(t *testing.T) {
	_, err := snapshot.Load(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestLoad_RootIsFile(t *testing.T) {
	dir := writeTree(t, map[string]string{"f.txt": "x"})
	_, err := snapshot.Load(filepath.Join(dir, "f.txt"))
	assert.Error(t, err)
}

func TestReadText(t *testing.T) {
	dir := writeTree(t, map[string]string{"go.mod": "module x\n"})
	snap, err := snapshot.Load(dir)
	require.NoError(t, err)

	content, err := snap.ReadText("go.mod")
	require.NoError(t, err)
	assert.Equal(t, "module x\n", content)
}

func TestReadText_UntrackedPath(t *testing.T) {
	snap, err := snapshot.Load(writeTree(t, map[string]string{"a.txt": "x"}))
	require.NoError(t, err)

	_, err = snap.ReadText("missing.txt")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReadText_BinaryContent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blob.bin"), []byte{0x7f, 0x45, 0x00, 0x01}, 0o644))

	snap, err := snapshot.Load(dir)
	require.NoError(t, err)

	_, err = snap.ReadText("blob.bin")
	assert.ErrorIs(t, err, domain.ErrNotReadable)
}

func TestFilesReturnsCopy(t *testing.T) {
	snap, err := snapshot.Load(writeTree(t, map[string]string{"a.txt": "x", "b.txt": "y"}))
	require.NoError(t, err)

	files := snap.Files()
	files[0] = "mutated"
	assert.Equal(t, []string{"a.txt", "b.txt"}, snap.Files())
}
