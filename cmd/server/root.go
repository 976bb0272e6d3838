package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/design-lab/internal/config"
)

var configDir string

// NewRootCmd builds the command tree. Running the root command serves the API.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "design-lab",
		Short: "AI Design Lab portal API",
		Long: `design-lab serves the AI Design Lab portal API: gallery posts, notices,
schedules, operator content and access logs. Without a database it serves
the built-in catalog read-only.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, false)
		},
	}

	root.PersistentFlags().StringVarP(&configDir, "config-dir", "c", ".", "directory containing config.toml and its overlays")

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	root.AddCommand(newSeedCmd())

	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFrom(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
