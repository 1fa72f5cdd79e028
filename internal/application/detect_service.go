package application

import (
	"encoding/json"
	"fmt"

	"github.com/selfdeploy/selfdeploy/internal/domain"
	"github.com/selfdeploy/selfdeploy/internal/domain/extract"
	"github.com/selfdeploy/selfdeploy/internal/domain/resolve"
)

// DetectService runs the detection half of the pipeline:
// snapshot → extract → resolve, with no artifact generation.
type DetectService struct {
	snapshots domain.SnapshotLoader
	configs   domain.ConfigLoader
}

func NewDetectService(snapshots domain.SnapshotLoader, configs domain.ConfigLoader) *DetectService {
	return &DetectService{snapshots: snapshots, configs: configs}
}

// Detect resolves the stack profile for rootPath and returns the raw
// signal sequence alongside it. A missing or unreadable root is fatal;
// everything else degrades inside the extractors.
func (s *DetectService) Detect(rootPath string) (domain.StackProfile, []domain.Signal, error) {
	cfg, err := s.configs.Load(rootPath)
	if err != nil {
		return domain.StackProfile{}, nil, fmt.Errorf("loading config: %w", err)
	}

	snap, err := s.snapshots.Load(rootPath, cfg.ExcludePaths)
	if err != nil {
		return domain.StackProfile{}, nil, fmt.Errorf("loading snapshot: %w", err)
	}

	signals := extract.All(snap, cfg.EffectiveWeights())
	return resolve.Resolve(signals), signals, nil
}

// RenderProfileJSON renders a profile as indented JSON.
func (s *DetectService) RenderProfileJSON(profile domain.StackProfile) ([]byte, error) {
	return json.MarshalIndent(profile, "", "  ")
}
