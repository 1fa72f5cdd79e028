package domain

import "fmt"

// Weights control how much each evidence class contributes to language
// resolution. Manifest evidence must outrank extension counting, which in
// turn outranks secondary-extension evidence.
type Weights struct {
	Manifest  float64 `yaml:"manifest"  json:"manifest"`
	Extension float64 `yaml:"extension" json:"extension"`
	Secondary float64 `yaml:"secondary" json:"secondary"`
}

// Config holds run configuration loaded from .selfdeploy.yaml.
type Config struct {
	TemplatesDir       string   `yaml:"templates_dir"        json:"templates_dir,omitempty"`
	OutputDir          string   `yaml:"output_dir"           json:"output_dir,omitempty"`
	PreserveExistingCI *bool    `yaml:"preserve_existing_ci" json:"preserve_existing_ci,omitempty"`
	ExcludePaths       []string `yaml:"exclude_paths"        json:"exclude_paths,omitempty"`
	Weights            *Weights `yaml:"weights"              json:"weights,omitempty"`
}

// DefaultWeights returns the evidence weights used when none are configured.
func DefaultWeights() Weights {
	return Weights{Manifest: 10, Extension: 3, Secondary: 1}
}

// DefaultConfig returns a config that changes nothing: default weights,
// output into the analyzed root, existing CI files preserved.
func DefaultConfig() Config {
	return Config{}
}

// EffectiveWeights returns configured weights or the defaults.
func (c Config) EffectiveWeights() Weights {
	if c.Weights == nil {
		return DefaultWeights()
	}
	return *c.Weights
}

// PreserveCI reports whether an existing CI file must not be overwritten.
// Defaults to true when unset.
func (c Config) PreserveCI() bool {
	if c.PreserveExistingCI == nil {
		return true
	}
	return *c.PreserveExistingCI
}

// Validate rejects weight orderings that would break the manifest-over-
// extension resolution contract.
func (c Config) Validate() error {
	if c.Weights == nil {
		return nil
	}
	w := *c.Weights
	if w.Manifest <= 0 || w.Extension <= 0 || w.Secondary <= 0 {
		return fmt.Errorf("weights must be positive (got manifest=%v extension=%v secondary=%v)",
			w.Manifest, w.Extension, w.Secondary)
	}
	if w.Manifest <= w.Extension {
		return fmt.Errorf("manifest weight (%v) must exceed extension weight (%v)", w.Manifest, w.Extension)
	}
	if w.Extension < w.Secondary {
		return fmt.Errorf("extension weight (%v) must be at least secondary weight (%v)", w.Extension, w.Secondary)
	}
	return nil
}
