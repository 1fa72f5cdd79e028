package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/selfdeploy/selfdeploy/internal/domain"
)

// FileName is the per-repository configuration file.
const FileName = ".selfdeploy.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .selfdeploy.yaml.
type YAMLLoader struct {
	path string
}

var _ domain.ConfigLoader = (*YAMLLoader)(nil)

func New() *YAMLLoader { return &YAMLLoader{} }

// NewWithFile returns a loader bound to an explicit config file. Unlike
// the per-repository file, an explicit file that is missing is fatal.
func NewWithFile(path string) *YAMLLoader { return &YAMLLoader{path: path} }

// Load reads .selfdeploy.yaml from rootPath, or the explicitly bound
// file. A missing per-repository file yields the defaults; a malformed
// or invalid file is fatal, unlike malformed manifests inside the
// analyzed repository.
func (l *YAMLLoader) Load(rootPath string) (domain.Config, error) {
	path := l.path
	if path == "" {
		path = filepath.Join(rootPath, FileName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if l.path == "" && errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, fmt.Errorf("reading config: %w", err)
	}

	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}
