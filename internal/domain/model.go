package domain

import "time"

// Signal categories.
const (
	CategoryLanguage         = "language"
	CategoryBuildTool        = "build-tool"
	CategoryTestFramework    = "test-framework"
	CategoryPackageManager   = "package-manager"
	CategoryFramework        = "framework"
	CategoryHint             = "hint"
	CategoryVersion          = "version"
	CategoryExistingArtifact = "existing-artifact"
)

// Primary language values. LanguageUnknown is a sentinel, never an absence:
// every resolved profile carries a primary language.
const (
	LanguageJava    = "java"
	LanguageKotlin  = "kotlin"
	LanguageGo      = "go"
	LanguageNodeJS  = "nodejs"
	LanguagePython  = "python"
	LanguageUnknown = "unknown"
)

// LanguagePriority is the fixed tie-break order for language resolution.
// It mirrors manifest precedence: a pom.xml repo resolves to Java even
// when a gradle.kts manifest ties on weight. Appending new languages
// keeps existing resolutions stable.
var LanguagePriority = []string{
	LanguageJava,
	LanguageKotlin,
	LanguageGo,
	LanguageNodeJS,
	LanguagePython,
}

// Frontend/backend hints for ambiguous ecosystems (Node.js).
const (
	HintFrontend = "frontend"
	HintBackend  = "backend"
)

// Existing-artifact values emitted by the artifact extractor.
const (
	ArtifactDockerfile  = "dockerfile"
	ArtifactCIPipeline  = "ci-pipeline"
	ArtifactSonarConfig = "sonar-config"
)

// Signal is one piece of evidence supporting a stack conclusion.
// Signals are immutable value records; a run produces an ordered
// sequence of them in extractor registration order.
type Signal struct {
	Category string   `json:"category"`
	Value    string   `json:"value"`
	Sources  []string `json:"sources,omitempty"`
	Weight   float64  `json:"weight"`
}

// StackProfile is the resolver's conclusion about a repository's stack.
// PrimaryLanguage is always populated (possibly LanguageUnknown); all
// other fields may be empty when no evidence supports them.
type StackProfile struct {
	PrimaryLanguage    string   `json:"primary_language"`
	SecondaryLanguages []string `json:"secondary_languages,omitempty"`
	BuildTool          string   `json:"build_tool,omitempty"`
	TestFramework      string   `json:"test_framework,omitempty"`
	PackageManager     string   `json:"package_manager,omitempty"`
	Framework          string   `json:"framework,omitempty"`
	Hint               string   `json:"hint,omitempty"`
	LanguageVersion    string   `json:"language_version,omitempty"`
	HasDockerfile      bool     `json:"has_dockerfile"`
	HasCI              bool     `json:"has_ci"`
	HasSonarConfig     bool     `json:"has_sonar_config"`
}

// Artifact kinds tracked in the plan.
const (
	KindCIPipeline = "ci-pipeline"
	KindDockerfile = "dockerfile"
	KindSonarStub  = "sonar-stub"
	KindReport     = "report"
)

// Artifact plan statuses.
const (
	StatusGenerated = "generated"
	StatusSkipped   = "skipped"
)

// ArtifactPlan records the outcome for one generated-or-skipped output file.
type ArtifactPlan struct {
	Kind   string `json:"kind"`
	Path   string `json:"path"`
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Generated reports whether the plan produced a file.
func (p ArtifactPlan) Generated() bool { return p.Status == StatusGenerated }

// Report aggregates the resolved profile and every attempted artifact.
// Built once at the end of a run, never mutated afterwards.
type Report struct {
	Profile    StackProfile   `json:"profile"`
	Artifacts  []ArtifactPlan `json:"artifacts"`
	Summary    []string       `json:"summary"`
	CommitHash string         `json:"commit_hash,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// GeneratedCount returns how many artifacts were actually written.
func (r Report) GeneratedCount() int {
	n := 0
	for _, a := range r.Artifacts {
		if a.Generated() {
			n++
		}
	}
	return n
}

// SkippedCount returns how many artifacts were skipped.
func (r Report) SkippedCount() int { return len(r.Artifacts) - r.GeneratedCount() }
