package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configadapter "github.com/selfdeploy/selfdeploy/internal/adapters/outbound/config"
	"github.com/selfdeploy/selfdeploy/internal/adapters/outbound/gitsource"
	"github.com/selfdeploy/selfdeploy/internal/adapters/outbound/snapshot"
	"github.com/selfdeploy/selfdeploy/internal/adapters/outbound/templates"
	"github.com/selfdeploy/selfdeploy/internal/adapters/outbound/tui"
	"github.com/selfdeploy/selfdeploy/internal/application"
	"github.com/selfdeploy/selfdeploy/internal/domain"
)

func configLoader(configFile string) *configadapter.YAMLLoader {
	if configFile != "" {
		return configadapter.NewWithFile(configFile)
	}
	return configadapter.New()
}

func newGenerateCmd() *cobra.Command {
	var (
		repoURL      string
		branch       string
		outputDir    string
		templatesDir string
		configFile   string
		ciProvider   string
		dryRun       bool
		asJSON       bool
	)

	cmd := &cobra.Command{
		Use:   "generate [path]",
		Short: "Analyze a repository and generate deployment artifacts",
		Long:  "Analyze a local path or a cloned --repo URL, resolve its technology stack, and write a GitLab CI pipeline, Dockerfile and SonarQube stub (existing files are never overwritten).",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if ciProvider != "gitlab" {
				return fmt.Errorf("unsupported CI provider %q (only gitlab is available)", ciProvider)
			}

			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			source := gitsource.New()
			if repoURL != "" {
				cloned, cleanup, err := source.Fetch(repoURL, branch)
				if err != nil {
					return fmt.Errorf("fetching repository: %w", err)
				}
				defer cleanup()
				path = cloned
				// Artifacts for a cloned repo land in the working
				// directory unless an output dir is given.
				if outputDir == "" {
					outputDir = "."
				}
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewGenerateService(
				snapshot.NewLoader(),
				configLoader(configFile),
				source,
				func(dir string) domain.TemplateStore { return templates.New(dir) },
			)

			report, err := svc.Run(absPath, application.GenerateOptions{
				OutputDir:    outputDir,
				TemplatesDir: templatesDir,
				DryRun:       dryRun,
			})
			if err != nil {
				return fmt.Errorf("generate failed: %w", err)
			}

			if asJSON {
				data, err := application.NewReportBuilder().RenderJSON(report)
				if err != nil {
					return fmt.Errorf("rendering JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&repoURL, "repo", "", "Git repository URL to clone and analyze")
	cmd.Flags().StringVar(&branch, "branch", "", "Branch to check out when cloning")
	cmd.Flags().StringVar(&outputDir, "output", "", "Directory for generated artifacts (default: analyzed root)")
	cmd.Flags().StringVar(&templatesDir, "templates", "", "Directory overriding the built-in templates")
	cmd.Flags().StringVar(&configFile, "config", "", "Config file (default: .selfdeploy.yaml in the analyzed root)")
	cmd.Flags().StringVar(&ciProvider, "ci", "gitlab", "Target CI provider")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Compute the artifact plan without writing files")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")

	return cmd
}
