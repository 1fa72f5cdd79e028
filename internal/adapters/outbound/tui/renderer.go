package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/selfdeploy/selfdeploy/internal/domain"
	"github.com/selfdeploy/selfdeploy/internal/domain/render"
)

var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(accent).Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(60)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	genStyle      = lipgloss.NewStyle().Foreground(success)
	skipStyle     = lipgloss.NewStyle().Foreground(warning)
	separatorLine = faintStyle.Render(strings.Repeat("─", 56))
)

// RenderReport renders a run report for the terminal.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	title := headerStyle.Render("selfdeploy")
	subtitle := dimStyle.Render("Repository stack analysis")
	lang := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(report.Profile.PrimaryLanguage)
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + lang))
	b.WriteString("\n\n")

	renderProfile(&b, report.Profile)

	b.WriteString("\n  " + separatorLine + "\n\n")
	b.WriteString("  " + titleStyle.Render("Artifacts") + "\n\n")
	for _, a := range report.Artifacts {
		renderPlan(&b, a)
	}

	b.WriteString("\n  " + dimStyle.Render(fmt.Sprintf(
		"%d generated, %d skipped", report.GeneratedCount(), report.SkippedCount())))
	b.WriteString("\n")
	return b.String()
}

// RenderProfile renders a detection-only result for the terminal.
func RenderProfile(profile domain.StackProfile) string {
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Detected stack") + "\n\n")
	renderProfile(&b, profile)
	return b.String()
}

func renderProfile(b *strings.Builder, p domain.StackProfile) {
	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(b, "  %s %s\n", dimStyle.Render(fmt.Sprintf("%-18s", label)), value)
	}
	row("language", p.PrimaryLanguage)
	row("secondary", strings.Join(p.SecondaryLanguages, ", "))
	row("build tool", p.BuildTool)
	row("test framework", p.TestFramework)
	row("package manager", p.PackageManager)
	row("framework", p.Framework)
	row("hint", p.Hint)
	row("version", p.LanguageVersion)
	row("template set", render.TemplateKey(p))
}

func renderPlan(b *strings.Builder, a domain.ArtifactPlan) {
	mark := genStyle.Render("✓")
	status := genStyle.Render("generated")
	if !a.Generated() {
		mark = skipStyle.Render("−")
		status = skipStyle.Render("skipped")
	}
	fmt.Fprintf(b, "  %s %-28s %s", mark, filepath.Base(a.Path), status)
	if a.Reason != "" {
		b.WriteString("  " + faintStyle.Render(a.Reason))
	}
	b.WriteString("\n")
}
