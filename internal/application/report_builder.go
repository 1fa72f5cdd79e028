package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/selfdeploy/selfdeploy/internal/domain"
	"github.com/selfdeploy/selfdeploy/internal/domain/render"
)

// ReportBuilder aggregates a resolved profile and artifact plans into a
// Report. Pure aggregation, no decision logic.
type ReportBuilder struct{}

func NewReportBuilder() *ReportBuilder { return &ReportBuilder{} }

// Build assembles the report with narrative summary lines. The summary
// enumerates every attempted artifact with its outcome, so partial
// success is visible, never hidden.
func (b *ReportBuilder) Build(profile domain.StackProfile, plans []domain.ArtifactPlan, commit string) *domain.Report {
	report := &domain.Report{
		Profile:    profile,
		Artifacts:  plans,
		CommitHash: commit,
		Timestamp:  time.Now().UTC(),
	}

	lang := profile.PrimaryLanguage
	if profile.BuildTool != "" {
		lang += " (build tool: " + profile.BuildTool + ")"
	}
	report.Summary = append(report.Summary, "Detected primary language: "+lang)
	if len(profile.SecondaryLanguages) > 0 {
		report.Summary = append(report.Summary,
			"Secondary languages: "+strings.Join(profile.SecondaryLanguages, ", "))
	}
	if profile.Framework != "" {
		report.Summary = append(report.Summary, "Framework: "+profile.Framework)
	}
	if profile.TestFramework != "" {
		report.Summary = append(report.Summary, "Test framework: "+profile.TestFramework)
	}
	report.Summary = append(report.Summary, "Template set: "+render.TemplateKey(profile))

	for _, p := range plans {
		line := fmt.Sprintf("%s %s", p.Status, filepath.Base(p.Path))
		if p.Reason != "" {
			line += " (" + p.Reason + ")"
		}
		report.Summary = append(report.Summary, line)
	}
	report.Summary = append(report.Summary,
		fmt.Sprintf("Generated %d artifacts, skipped %d.", report.GeneratedCount(), report.SkippedCount()))

	return report
}

// RenderJSON renders the report as indented JSON.
func (b *ReportBuilder) RenderJSON(report *domain.Report) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

const reportTemplate = `# Deployment analysis for {{ .Profile.PrimaryLanguage }} project

Generated: {{ .Timestamp.Format "2006-01-02 15:04:05 MST" }}
{{- if .CommitHash }}
Commit: {{ .CommitHash }}
{{- end }}

## Detected stack

| Field | Value |
|-------|-------|
| Primary language | {{ .Profile.PrimaryLanguage }} |
| Secondary languages | {{ if .Profile.SecondaryLanguages }}{{ joinComma .Profile.SecondaryLanguages }}{{ else }}-{{ end }} |
| Build tool | {{ orDash .Profile.BuildTool }} |
| Test framework | {{ orDash .Profile.TestFramework }} |
| Package manager | {{ orDash .Profile.PackageManager }} |
| Framework | {{ orDash .Profile.Framework }} |
| Hint | {{ orDash .Profile.Hint }} |
| Language version | {{ orDash .Profile.LanguageVersion }} |

## Artifacts

| Kind | Path | Status | Reason |
|------|------|--------|--------|
{{- range .Artifacts }}
| {{ .Kind }} | {{ .Path }} | {{ .Status }} | {{ orDash .Reason }} |
{{- end }}

## Summary

{{- range .Summary }}
- {{ . }}
{{- end }}
`

// RenderMarkdown renders the narrative report.
func (b *ReportBuilder) RenderMarkdown(report *domain.Report) string {
	funcMap := template.FuncMap{
		"joinComma": func(items []string) string { return strings.Join(items, ", ") },
		"orDash": func(s string) string {
			if s == "" {
				return "-"
			}
			return s
		},
	}
	tmpl := template.Must(template.New("report").Funcs(funcMap).Parse(reportTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, report)
	return buf.String()
}
