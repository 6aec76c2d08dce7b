// Entry commands: add, update, and list weekly progress entries.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/logbook/internal/records"
	"github.com/mesh-intelligence/logbook/internal/week"
	"github.com/mesh-intelligence/logbook/pkg/types"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Manage weekly progress entries",
}

var (
	flagEntryStudent   string
	flagEntryWeek      string
	flagEntryGoals     []string
	flagEntryStatuses  []string
	flagEntryNotes     string
	flagEntryNextGoals []string
	flagEntryCreatedBy string
	flagEntryCarry     bool
)

var entryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a weekly entry for a student",
	Long: `Add creates one entry for a (student, week) pair and commits the updated
weekly entries file. Goals without an explicit --status default to not
achieved; the overall status is derived, never supplied. With --carry-forward
and no --goal flags, the previous entry's next-week goals become this week's
goals.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		b, err := loadBook(ctx)
		if err != nil {
			return err
		}
		student, err := findStudent(b, flagEntryStudent)
		if err != nil {
			return err
		}

		weekStart := flagEntryWeek
		if weekStart == "" {
			weekStart = week.CurrentWeekStart()
		}

		goals := flagEntryGoals
		if len(goals) == 0 && flagEntryCarry {
			carried, ok := b.DuplicateLastWeekGoals(student.ID, weekStart)
			if !ok {
				return fmt.Errorf("no earlier entry to carry goals from")
			}
			goals = carried
		}

		statuses := flagEntryStatuses
		if len(statuses) == 0 {
			statuses = make([]string, len(goals))
			for i := range statuses {
				statuses[i] = types.StatusNotAchieved
			}
		}

		e, err := b.CreateWeeklyEntry(records.WeeklyEntryInput{
			StudentID:     student.ID,
			WeekStartDate: weekStart,
			Goals:         goals,
			GoalStatuses:  statuses,
			ProgressNotes: flagEntryNotes,
			NextWeekGoals: flagEntryNextGoals,
			CreatedBy:     flagEntryCreatedBy,
		})
		if err != nil {
			return err
		}

		if err := syn.SaveAll(ctx, b.Data(), msgAddEntry); err != nil {
			return err
		}
		fmt.Printf("Added entry %s for %s, week of %s (%s).\n",
			e.ID, student.FullName, week.FormatDisplay(e.WeekStartDate), e.OverallStatus)
		return nil
	},
}

var entryUpdateCmd = &cobra.Command{
	Use:   "update <entry-id>",
	Short: "Update an existing weekly entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		b, err := loadBook(ctx)
		if err != nil {
			return err
		}

		var current types.WeeklyEntry
		found := false
		for _, e := range b.Data().WeeklyEntries {
			if e.ID == args[0] {
				current, found = e, true
				break
			}
		}
		if !found {
			return fmt.Errorf("entry %q: %w", args[0], types.ErrNotFound)
		}

		in := records.WeeklyEntryInput{
			StudentID:     current.StudentID,
			WeekStartDate: current.WeekStartDate,
			Goals:         current.Goals,
			GoalStatuses:  current.GoalStatuses,
			ProgressNotes: current.ProgressNotes,
			NextWeekGoals: current.NextWeekGoals,
		}
		if len(flagEntryGoals) > 0 {
			in.Goals = flagEntryGoals
		}
		if len(flagEntryStatuses) > 0 {
			in.GoalStatuses = flagEntryStatuses
		}
		if cmd.Flags().Changed("notes") {
			in.ProgressNotes = flagEntryNotes
		}
		if len(flagEntryNextGoals) > 0 {
			in.NextWeekGoals = flagEntryNextGoals
		}

		e, err := b.UpdateWeeklyEntry(current.ID, in)
		if err != nil {
			return err
		}
		if err := syn.SaveAll(ctx, b.Data(), msgUpdateEntry); err != nil {
			return err
		}
		fmt.Printf("Updated entry %s (%s).\n", e.ID, e.OverallStatus)
		return nil
	},
}

var entryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a student's weekly entries, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBook(cmd.Context())
		if err != nil {
			return err
		}
		student, err := findStudent(b, flagEntryStudent)
		if err != nil {
			return err
		}

		entries := b.EntriesByStudent(student.ID)
		if len(entries) == 0 {
			fmt.Printf("No entries for %s.\n", student.FullName)
			return nil
		}
		fmt.Printf("Entries for %s:\n", student.FullName)
		for _, e := range entries {
			fmt.Printf("  %s  %-12s  %d goals  %s\n",
				week.FormatDisplay(e.WeekStartDate), e.OverallStatus,
				len(e.Goals), strings.Join(e.Goals, "; "))
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{entryAddCmd, entryUpdateCmd} {
		c.Flags().StringVar(&flagEntryWeek, "week", "", "week start date (default: current week's Monday)")
		c.Flags().StringArrayVar(&flagEntryGoals, "goal", nil, "goal for the week (repeatable)")
		c.Flags().StringArrayVar(&flagEntryStatuses, "goal-status", nil, "per-goal status: achieved, partial, not_achieved (repeatable)")
		c.Flags().StringVar(&flagEntryNotes, "notes", "", "progress notes")
		c.Flags().StringArrayVar(&flagEntryNextGoals, "next-goal", nil, "goal for next week (repeatable)")
	}
	entryAddCmd.Flags().StringVar(&flagEntryStudent, "student", "", "student id, email, or full name")
	entryAddCmd.Flags().StringVar(&flagEntryCreatedBy, "created-by", "cli", "author recorded on the entry")
	entryAddCmd.Flags().BoolVar(&flagEntryCarry, "carry-forward", false, "use last entry's next-week goals as this week's goals")
	_ = entryAddCmd.MarkFlagRequired("student")

	entryListCmd.Flags().StringVar(&flagEntryStudent, "student", "", "student id, email, or full name")
	_ = entryListCmd.MarkFlagRequired("student")

	entryCmd.AddCommand(entryAddCmd)
	entryCmd.AddCommand(entryUpdateCmd)
	entryCmd.AddCommand(entryListCmd)
}
