package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configadapter "github.com/selfdeploy/selfdeploy/internal/adapters/outbound/config"
	"github.com/selfdeploy/selfdeploy/internal/domain"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .selfdeploy.yaml configuration file",
		Long:  "Create a .selfdeploy.yaml with the default evidence weights and non-clobber policy, ready to edit.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configadapter.FileName)
			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configadapter.FileName)
				}
			}

			if err := os.WriteFile(dest, []byte(defaultConfigContent()), 0o644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configadapter.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .selfdeploy.yaml")

	return cmd
}

func defaultConfigContent() string {
	w := domain.DefaultWeights()
	return fmt.Sprintf(`# SelfDeploy configuration

# Do not overwrite an existing .gitlab-ci.yml (Dockerfiles and sonar
# configs are always preserved).
preserve_existing_ci: true

# Evidence weights for stack resolution. Manifest evidence must outrank
# extension counting.
weights:
  manifest: %g
  extension: %g
  secondary: %g

# templates_dir: ./deploy-templates
# output_dir: .

# exclude_paths:
#   - generated
#   - third_party
`, w.Manifest, w.Extension, w.Secondary)
}
