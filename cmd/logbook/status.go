// Status command: report on the current reporting week.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/logbook/internal/records"
	"github.com/mesh-intelligence/logbook/internal/sync"
	"github.com/mesh-intelligence/logbook/internal/week"
)

var flagStatusWeek string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize progress for the current reporting week",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := syn.LoadAll(cmd.Context())
		if err != nil {
			return err
		}
		if res.State == sync.StateUninitialized {
			fmt.Println("Remote data not initialized; run \"logbook init\" first.")
			return nil
		}
		if res.State == sync.StateOffline {
			fmt.Println("Remote store unreachable; showing generated demo data.")
		}

		weekStart := flagStatusWeek
		if weekStart == "" {
			weekStart = week.CurrentWeekStart()
		}
		if !week.IsWeekStart(weekStart) {
			return fmt.Errorf("--week %q is not the Monday of a week", weekStart)
		}

		b := records.NewBook(res.Data)
		sum := b.Summarize(weekStart)

		fmt.Printf("Week of %s\n", week.FormatDisplay(sum.Week))
		fmt.Printf("  Active students:   %d\n", sum.ActiveStudents)
		fmt.Printf("  Filed this week:   %d\n", sum.WithEntry)
		fmt.Printf("  Entries this week: %d\n", sum.EntriesThisWeek)
		fmt.Printf("  Fully achieved:    %d\n", sum.Achieved)
		if cfg.WriteEnabled() {
			fmt.Println("  Mode:              read-write")
		} else {
			fmt.Println("  Mode:              read-only (no token)")
		}
		return nil
	},
}

func init() {
	statusCmd.Flags().StringVar(&flagStatusWeek, "week", "", "reporting week start date (default: current week's Monday)")
}
