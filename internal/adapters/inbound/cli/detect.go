package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/selfdeploy/selfdeploy/internal/adapters/outbound/snapshot"
	"github.com/selfdeploy/selfdeploy/internal/adapters/outbound/tui"
	"github.com/selfdeploy/selfdeploy/internal/application"
)

func newDetectCmd() *cobra.Command {
	var (
		format      string
		configFile  string
		showSignals bool
	)

	cmd := &cobra.Command{
		Use:   "detect [path]",
		Short: "Resolve a repository's technology stack without generating anything",
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

			svc := application.NewDetectService(snapshot.NewLoader(), configLoader(configFile))
			profile, signals, err := svc.Detect(absPath)
			if err != nil {
				return fmt.Errorf("detect failed: %w", err)
			}

			if format == "json" {
				payload := any(profile)
				if showSignals {
					payload = map[string]any{"profile": profile, "signals": signals}
				}
				data, err := json.MarshalIndent(payload, "", "  ")
				if err != nil {
					return fmt.Errorf("rendering JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderProfile(profile))
			if showSignals {
				for _, s := range signals {
					fmt.Fprintf(cmd.OutOrStdout(), "  %-18s %-16s %5.1f  %v\n",
						s.Category, s.Value, s.Weight, s.Sources)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&configFile, "config", "", "Config file (default: .selfdeploy.yaml in the analyzed root)")
	cmd.Flags().BoolVar(&showSignals, "signals", false, "Include the raw signal sequence")

	return cmd
}
