package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "seed [name...]",
		Short: "Replace table contents with the built-in catalog",
		Long: `seed clears and reloads catalog tables inside a single transaction.
Without arguments every seeder runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				fmt.Fprintln(cmd.OutOrStdout(), "Available seeders:")
				for _, s := range listSeeders() {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s: %s\n", s.Name(), s.Description())
				}
				return nil
			}

			return withDatabase(func(env *commandEnv) error {
				done, err := runSeeders(cmd.Context(), env.db, args...)
				if err != nil {
					return err
				}
				env.infra.Logger.Info("seeding complete", "seeders", done)
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "list available seeders")
	return cmd
}
