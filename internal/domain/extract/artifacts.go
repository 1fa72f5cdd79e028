package extract

import "github.com/selfdeploy/selfdeploy/internal/domain"

// existingArtifactFiles maps root-level files to the artifact generation
// they suppress under the non-clobber policy.
var existingArtifactFiles = []struct {
	file  string
	value string
}{
	{"Dockerfile", domain.ArtifactDockerfile},
	{".gitlab-ci.yml", domain.ArtifactCIPipeline},
	{"sonar-project.properties", domain.ArtifactSonarConfig},
}

// ExistingArtifacts flags deployment artifacts already present in the
// repository so the selector can skip regenerating them.
func ExistingArtifacts(snap domain.Snapshot, w domain.Weights) []domain.Signal {
	var signals []domain.Signal
	for _, a := range existingArtifactFiles {
		if snap.Exists(a.file) {
			signals = append(signals, sig(domain.CategoryExistingArtifact, a.value, a.file, w.Manifest))
		}
	}
	return signals
}
