package records

import "github.com/mesh-intelligence/logbook/pkg/types"

// WeekSummary aggregates reporting-week health for display: how many active
// students there are, how many of them filed an entry for the week, and how
// many of the week's entries derived to achieved.
type WeekSummary struct {
	Week            string
	ActiveStudents  int
	WithEntry       int
	EntriesThisWeek int
	Achieved        int
}

// Summarize computes the summary for one reporting week. Pure projection
// over the in-memory dataset.
func (b *Book) Summarize(weekStart string) WeekSummary {
	sum := WeekSummary{Week: weekStart}
	for _, s := range b.data.Students {
		if s.Status != types.StudentActive {
			continue
		}
		sum.ActiveStudents++
		if b.HasEntryForWeek(s.ID, weekStart) {
			sum.WithEntry++
		}
	}
	for _, e := range b.data.WeeklyEntries {
		if e.WeekStartDate != weekStart {
			continue
		}
		sum.EntriesThisWeek++
		if e.OverallStatus == types.StatusAchieved {
			sum.Achieved++
		}
	}
	return sum
}
