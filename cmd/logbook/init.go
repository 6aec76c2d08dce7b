// Init command: seed the remote repository with the demo dataset.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/logbook/internal/seed"
	"github.com/mesh-intelligence/logbook/internal/sync"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the remote data files with the demo dataset",
	Long: `Init checks the remote repository for the five CSV data files. When any
of them is absent it generates the demo dataset (students, teams, and a few
weeks of progress history) and commits all five files. Already-initialized
repositories are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		res, err := syn.LoadAll(ctx)
		if err != nil {
			return err
		}
		switch res.State {
		case sync.StateHydrated:
			fmt.Println("Remote data already initialized; nothing to do.")
			return nil
		case sync.StateOffline:
			return fmt.Errorf("remote store unreachable; cannot initialize")
		}

		data, err := seed.Demo()
		if err != nil {
			return fmt.Errorf("generating seed data: %w", err)
		}
		if err := syn.SaveAll(ctx, data, msgSeed); err != nil {
			return err
		}

		fmt.Printf("Initialized remote data: %d students, %d weekly entries, %d teams.\n",
			len(data.Students), len(data.WeeklyEntries), len(data.Teams))
		return nil
	},
}
