package application

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/selfdeploy/selfdeploy/internal/domain"
	"github.com/selfdeploy/selfdeploy/internal/domain/extract"
	"github.com/selfdeploy/selfdeploy/internal/domain/render"
	"github.com/selfdeploy/selfdeploy/internal/domain/resolve"
)

// Target filenames for generated artifacts.
const (
	CIFileName         = ".gitlab-ci.yml"
	DockerfileName     = "Dockerfile"
	SonarFileName      = "sonar-project.properties"
	ReportJSONFileName = "report.json"
	ReportMDFileName   = "REPORT.md"
)

// TemplateStoreFactory builds a template store for an override directory.
// The directory comes from configuration, so the store cannot be
// constructed until after the config is loaded.
type TemplateStoreFactory func(overrideDir string) domain.TemplateStore

// GenerateOptions carries per-invocation overrides of the configuration.
type GenerateOptions struct {
	OutputDir    string
	TemplatesDir string
	// DryRun computes the full artifact plan without writing any file.
	DryRun bool
}

// GenerateService orchestrates the full pipeline:
// snapshot → extract → resolve → select/render → write → report.
type GenerateService struct {
	snapshots domain.SnapshotLoader
	configs   domain.ConfigLoader
	git       domain.RepoSource
	templates TemplateStoreFactory
	reports   *ReportBuilder
}

func NewGenerateService(
	snapshots domain.SnapshotLoader,
	configs domain.ConfigLoader,
	git domain.RepoSource,
	templates TemplateStoreFactory,
) *GenerateService {
	return &GenerateService{
		snapshots: snapshots,
		configs:   configs,
		git:       git,
		templates: templates,
		reports:   NewReportBuilder(),
	}
}

// Run analyzes rootPath and generates deployment artifacts. Partial
// success is normal: individual artifacts may be skipped (non-clobber,
// template not found) and the returned report enumerates every outcome.
// It fails only when the snapshot cannot be loaded, the config is
// invalid, or no artifact could be produced at all.
func (s *GenerateService) Run(rootPath string, opts GenerateOptions) (*domain.Report, error) {
	cfg, err := s.configs.Load(rootPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	snap, err := s.snapshots.Load(rootPath, cfg.ExcludePaths)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot: %w", err)
	}

	signals := extract.All(snap, cfg.EffectiveWeights())
	profile := resolve.Resolve(signals)

	projectName := filepath.Base(snap.Root())
	params := render.BuildParams(profile, projectName, hasIntegrationTests(snap))

	outputDir := firstNonEmpty(opts.OutputDir, cfg.OutputDir, snap.Root())
	store := s.templates(firstNonEmpty(opts.TemplatesDir, cfg.TemplatesDir))

	var plans []domain.ArtifactPlan
	templateFailures := 0

	plan := s.planCI(snap, cfg, store, params, outputDir, opts.DryRun)
	plans = append(plans, plan)
	if strings.Contains(plan.Reason, "template not found") {
		templateFailures++
	}

	plan = s.planDockerfile(snap, store, params, outputDir, opts.DryRun)
	plans = append(plans, plan)
	if strings.Contains(plan.Reason, "template not found") {
		templateFailures++
	}

	plan = s.planSonar(snap, store, params, outputDir, opts.DryRun)
	plans = append(plans, plan)
	if strings.Contains(plan.Reason, "template not found") {
		templateFailures++
	}

	if templateFailures == len(plans) {
		return nil, fmt.Errorf("no artifacts could be produced: %w", domain.ErrTemplateNotFound)
	}

	// Report files are artifacts too; they are written below, after the
	// report itself is assembled.
	reportStatus := domain.StatusGenerated
	reportReason := ""
	if opts.DryRun {
		reportStatus = domain.StatusSkipped
		reportReason = "dry run"
	}
	plans = append(plans,
		domain.ArtifactPlan{Kind: domain.KindReport, Path: filepath.Join(outputDir, ReportJSONFileName), Status: reportStatus, Reason: reportReason},
		domain.ArtifactPlan{Kind: domain.KindReport, Path: filepath.Join(outputDir, ReportMDFileName), Status: reportStatus, Reason: reportReason},
	)

	commit, err := s.git.CommitHash(snap.Root())
	if err != nil {
		commit = "" // not a git repo, or detached metadata; report still builds
	}

	report := s.reports.Build(profile, plans, commit)

	if !opts.DryRun {
		if err := s.writeReports(report, outputDir); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func (s *GenerateService) planCI(
	snap domain.Snapshot,
	cfg domain.Config,
	store domain.TemplateStore,
	params render.Params,
	outputDir string,
	dryRun bool,
) domain.ArtifactPlan {
	target := filepath.Join(outputDir, CIFileName)
	if cfg.PreserveCI() && (snap.Exists(CIFileName) || fileExists(target)) {
		return skipped(domain.KindCIPipeline, target, "existing CI file preserved")
	}
	return s.renderPlan(domain.KindCIPipeline, target, store, render.CITemplatePath(params.Key), params, dryRun)
}

func (s *GenerateService) planDockerfile(
	snap domain.Snapshot,
	store domain.TemplateStore,
	params render.Params,
	outputDir string,
	dryRun bool,
) domain.ArtifactPlan {
	target := filepath.Join(outputDir, DockerfileName)
	// Existing Dockerfiles are never overwritten, regardless of stack.
	if snap.Exists(DockerfileName) || fileExists(target) {
		return skipped(domain.KindDockerfile, target, "existing Dockerfile preserved")
	}
	return s.renderPlan(domain.KindDockerfile, target, store, render.DockerfileTemplatePath(params.Key), params, dryRun)
}

func (s *GenerateService) planSonar(
	snap domain.Snapshot,
	store domain.TemplateStore,
	params render.Params,
	outputDir string,
	dryRun bool,
) domain.ArtifactPlan {
	target := filepath.Join(outputDir, SonarFileName)
	if snap.Exists(SonarFileName) || fileExists(target) {
		return skipped(domain.KindSonarStub, target, "existing sonar config preserved")
	}
	return s.renderPlan(domain.KindSonarStub, target, store, render.SonarTemplatePath, params, dryRun)
}

// renderPlan looks the template up, falling back to the generic set for
// the same artifact kind, renders it and writes the target. Failures
// stay local to the one artifact.
func (s *GenerateService) renderPlan(
	kind, target string,
	store domain.TemplateStore,
	templatePath string,
	params render.Params,
	dryRun bool,
) domain.ArtifactPlan {
	text, err := store.Lookup(templatePath)
	if errors.Is(err, domain.ErrTemplateNotFound) {
		text, err = store.Lookup(genericTemplatePath(kind))
	}
	if err != nil {
		return skipped(kind, target, fmt.Sprintf("template not found: %s", templatePath))
	}

	content, err := render.Render(templatePath, text, params)
	if err != nil {
		return skipped(kind, target, fmt.Sprintf("rendering failed: %v", err))
	}

	if !dryRun {
		if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
			return skipped(kind, target, fmt.Sprintf("write failed: %v", err))
		}
	}
	return domain.ArtifactPlan{Kind: kind, Path: target, Status: domain.StatusGenerated}
}

func (s *GenerateService) writeReports(report *domain.Report, outputDir string) error {
	data, err := s.reports.RenderJSON(report)
	if err != nil {
		return fmt.Errorf("rendering report JSON: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, ReportJSONFileName), data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", ReportJSONFileName, err)
	}
	md := s.reports.RenderMarkdown(report)
	if err := os.WriteFile(filepath.Join(outputDir, ReportMDFileName), []byte(md), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", ReportMDFileName, err)
	}
	return nil
}

func genericTemplatePath(kind string) string {
	switch kind {
	case domain.KindDockerfile:
		return render.DockerfileTemplatePath(render.KeyGeneric)
	case domain.KindSonarStub:
		return render.SonarTemplatePath
	default:
		return render.CITemplatePath(render.KeyGeneric)
	}
}

// hasIntegrationTests reports whether the tree carries an integration or
// e2e test directory, which adds an integration job to the pipeline.
func hasIntegrationTests(snap domain.Snapshot) bool {
	for _, f := range snap.Files() {
		for _, seg := range strings.Split(filepath.ToSlash(filepath.Dir(f)), "/") {
			if strings.Contains(seg, "integration") || seg == "e2e" {
				return true
			}
		}
	}
	return false
}

func skipped(kind, target, reason string) domain.ArtifactPlan {
	return domain.ArtifactPlan{Kind: kind, Path: target, Status: domain.StatusSkipped, Reason: reason}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
