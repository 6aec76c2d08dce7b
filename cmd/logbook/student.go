// Student commands: add and list students.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/logbook/internal/records"
	"github.com/mesh-intelligence/logbook/internal/week"
)

var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Manage students",
}

var (
	flagStudentName       string
	flagStudentEmail      string
	flagStudentCohort     string
	flagStudentStartDate  string
	flagStudentNotes      string
	flagStudentArea       string
	flagStudentSupervisor string
)

var studentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a student and commit the updated roster",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		b, err := loadBook(ctx)
		if err != nil {
			return err
		}

		startDate := flagStudentStartDate
		if startDate == "" {
			startDate = week.CurrentWeekStart()
		}

		s, err := b.CreateStudent(records.StudentInput{
			FullName:     flagStudentName,
			Email:        flagStudentEmail,
			Cohort:       flagStudentCohort,
			StartDate:    startDate,
			Notes:        flagStudentNotes,
			ResearchArea: flagStudentArea,
			Supervisor:   flagStudentSupervisor,
		})
		if err != nil {
			return err
		}

		if err := syn.SaveAll(ctx, b.Data(), msgAddStudent); err != nil {
			return err
		}
		fmt.Printf("Added student %s (%s).\n", s.FullName, s.ID)
		return nil
	},
}

var studentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List students with their latest entry week",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := loadBook(cmd.Context())
		if err != nil {
			return err
		}

		for _, s := range b.Data().Students {
			latest := "no entries"
			if entries := b.EntriesByStudent(s.ID); len(entries) > 0 {
				latest = week.FormatDisplay(entries[0].WeekStartDate)
			}
			fmt.Printf("%-24s %-10s %-20s last entry: %s\n",
				s.FullName, s.Status, s.ResearchArea, latest)
		}
		return nil
	},
}

func init() {
	studentAddCmd.Flags().StringVar(&flagStudentName, "name", "", "full name")
	studentAddCmd.Flags().StringVar(&flagStudentEmail, "email", "", "email address")
	studentAddCmd.Flags().StringVar(&flagStudentCohort, "cohort", "", "cohort label")
	studentAddCmd.Flags().StringVar(&flagStudentStartDate, "start-date", "", "week-aligned start date (default: current week's Monday)")
	studentAddCmd.Flags().StringVar(&flagStudentNotes, "notes", "", "free-form notes")
	studentAddCmd.Flags().StringVar(&flagStudentArea, "area", "", "research area")
	studentAddCmd.Flags().StringVar(&flagStudentSupervisor, "supervisor", "", "supervisor name")
	_ = studentAddCmd.MarkFlagRequired("name")

	studentCmd.AddCommand(studentAddCmd)
	studentCmd.AddCommand(studentListCmd)
}
