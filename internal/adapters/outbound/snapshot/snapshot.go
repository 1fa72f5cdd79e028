// Package snapshot implements domain.Snapshot by walking a local
// repository checkout once and exposing read-only accessors over it.
package snapshot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/selfdeploy/selfdeploy/internal/domain"
)

var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"bin":          true,
	"__pycache__":  true,
	".venv":        true,
	"venv":         true,
	".idea":        true,
	".vscode":      true,
}

const maxReadSize = 256 * 1024 // cap for manifest reads

// Snapshot is an immutable view over a file tree at load time.
type Snapshot struct {
	root  string
	files []string
	index map[string]bool
}

var _ domain.Snapshot = (*Snapshot)(nil)

// Loader implements domain.SnapshotLoader.
type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

func (l *Loader) Load(root string, excludes []string) (domain.Snapshot, error) {
	return Load(root, excludes...)
}

// Load walks root and returns a snapshot of its regular files. A missing
// or unreadable root is fatal: analysis cannot proceed without it.
// Directory symlinks are not followed, so symlink cycles cannot revisit
// a real path.
func Load(root string, excludes ...string) (*Snapshot, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root: %w", err)
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("snapshot root %s is not a directory", absRoot)
	}

	extraSkip := make(map[string]bool, len(excludes))
	for _, p := range excludes {
		extraSkip[strings.TrimSuffix(p, "/")] = true
	}

	snap := &Snapshot{root: absRoot, index: map[string]bool{}}
	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(absRoot, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if path != absRoot && (skipDirs[d.Name()] || extraSkip[d.Name()] || extraSkip[rel]) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		snap.files = append(snap.files, rel)
		snap.index[rel] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", absRoot, err)
	}

	sort.Strings(snap.files)
	return snap, nil
}

func (s *Snapshot) Root() string { return s.root }

// Files returns the sorted relative paths. The returned slice is a copy;
// the snapshot stays immutable.
func (s *Snapshot) Files() []string {
	out := make([]string, len(s.files))
	copy(out, s.files)
	return out
}

func (s *Snapshot) Exists(rel string) bool { return s.index[filepath.ToSlash(rel)] }

// ReadText returns the content of a tracked file. Binary content and
// read failures map to ErrNotReadable; untracked paths to ErrNotFound.
func (s *Snapshot) ReadText(rel string) (string, error) {
	rel = filepath.ToSlash(rel)
	if !s.index[rel] {
		return "", fmt.Errorf("%s: %w", rel, domain.ErrNotFound)
	}
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil {
		return "", fmt.Errorf("%s: %w", rel, domain.ErrNotReadable)
	}
	if len(data) > maxReadSize {
		data = data[:maxReadSize]
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return "", fmt.Errorf("%s: %w", rel, domain.ErrNotReadable)
	}
	return string(data), nil
}
