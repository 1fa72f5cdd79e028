// Package extract holds the signal extractors: independent pure probes
// that each scan a repository snapshot for one class of evidence.
package extract

import "github.com/selfdeploy/selfdeploy/internal/domain"

// Probe inspects a snapshot and returns the signals it found. A probe
// must never fail the run: malformed input degrades to no signal.
type Probe func(snap domain.Snapshot, w domain.Weights) []domain.Signal

// Extractor pairs a probe with a stable name used in reports and tests.
type Extractor struct {
	Name  string
	Probe Probe
}

// Registry returns all extractors in their fixed registration order.
// Resolution tie-breaks depend on this order being stable, so new
// extractors are appended, never inserted.
func Registry() []Extractor {
	return []Extractor{
		{Name: "manifest", Probe: Manifests},
		{Name: "extensions", Probe: Extensions},
		{Name: "artifacts", Probe: ExistingArtifacts},
	}
}

// All runs every registered extractor and concatenates the signals in
// registration order.
func All(snap domain.Snapshot, w domain.Weights) []domain.Signal {
	var signals []domain.Signal
	for _, e := range Registry() {
		signals = append(signals, e.Probe(snap, w)...)
	}
	return signals
}
