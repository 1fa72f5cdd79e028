package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "selfdeploy",
		Short:         "Generate CI/CD pipelines and Dockerfiles from repository analysis",
		Long:          "SelfDeploy inspects a repository's file tree, infers its technology stack, and generates a GitLab CI pipeline, a multi-stage Dockerfile and a SonarQube stub to match.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newDetectCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
