// Package templates resolves template keys against an optional override
// directory, falling back to the embedded default set.
package templates

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/selfdeploy/selfdeploy/internal/domain"
)

//go:embed defaults
var defaultFS embed.FS

// Store implements domain.TemplateStore.
type Store struct {
	overrideDir string
}

var _ domain.TemplateStore = (*Store)(nil)

// New creates a store. overrideDir may be empty, in which case only the
// embedded defaults are consulted.
func New(overrideDir string) *Store {
	return &Store{overrideDir: overrideDir}
}

// Lookup returns the raw template text for a key like "ci/go.yml.tmpl".
// The override directory wins when it holds the key; otherwise the
// embedded defaults serve it. A key absent from both is
// ErrTemplateNotFound.
func (s *Store) Lookup(key string) (string, error) {
	if s.overrideDir != "" {
		data, err := os.ReadFile(filepath.Join(s.overrideDir, filepath.FromSlash(key)))
		if err == nil {
			return string(data), nil
		}
	}
	data, err := defaultFS.ReadFile("defaults/" + key)
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, domain.ErrTemplateNotFound)
	}
	return string(data), nil
}
