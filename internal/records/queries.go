package records

import (
	"sort"

	"github.com/mesh-intelligence/logbook/pkg/types"
)

// StudentByID returns the student with the given ID.
func (b *Book) StudentByID(id string) (types.Student, bool) {
	for _, s := range b.data.Students {
		if s.ID == id {
			return s, true
		}
	}
	return types.Student{}, false
}

// TeamByID returns the team with the given ID.
func (b *Book) TeamByID(id string) (types.Team, bool) {
	for _, t := range b.data.Teams {
		if t.ID == id {
			return t, true
		}
	}
	return types.Team{}, false
}

// EntriesByStudent returns the student's weekly entries sorted by week start
// date descending (most recent first).
func (b *Book) EntriesByStudent(studentID string) []types.WeeklyEntry {
	var entries []types.WeeklyEntry
	for _, e := range b.data.WeeklyEntries {
		if e.StudentID == studentID {
			entries = append(entries, e)
		}
	}
	// ISO civil dates order lexicographically.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].WeekStartDate > entries[j].WeekStartDate
	})
	return entries
}

// EntryByStudentAndWeek returns the student's entry for the exact week.
func (b *Book) EntryByStudentAndWeek(studentID, weekStart string) (types.WeeklyEntry, bool) {
	for _, e := range b.data.WeeklyEntries {
		if e.StudentID == studentID && e.WeekStartDate == weekStart {
			return e, true
		}
	}
	return types.WeeklyEntry{}, false
}

// HasEntryForWeek reports whether the student filed an entry for the week.
func (b *Book) HasEntryForWeek(studentID, weekStart string) bool {
	_, ok := b.EntryByStudentAndWeek(studentID, weekStart)
	return ok
}

// TeamsByStudent returns the teams the student belongs to, via the
// membership join, in team collection order.
func (b *Book) TeamsByStudent(studentID string) []types.Team {
	member := make(map[string]bool)
	for _, m := range b.data.TeamMemberships {
		if m.StudentID == studentID {
			member[m.TeamID] = true
		}
	}
	var teams []types.Team
	for _, t := range b.data.Teams {
		if member[t.ID] {
			teams = append(teams, t)
		}
	}
	return teams
}

// MembersByTeam returns the students belonging to the team, via the
// membership join, in student collection order.
func (b *Book) MembersByTeam(teamID string) []types.Student {
	member := make(map[string]bool)
	for _, m := range b.data.TeamMemberships {
		if m.TeamID == teamID {
			member[m.StudentID] = true
		}
	}
	var students []types.Student
	for _, s := range b.data.Students {
		if member[s.ID] {
			students = append(students, s)
		}
	}
	return students
}

// TeamEntriesByTeam returns the team's weekly entries sorted by week start
// date descending.
func (b *Book) TeamEntriesByTeam(teamID string) []types.TeamWeeklyEntry {
	var entries []types.TeamWeeklyEntry
	for _, e := range b.data.TeamWeeklyEntries {
		if e.TeamID == teamID {
			entries = append(entries, e)
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].WeekStartDate > entries[j].WeekStartDate
	})
	return entries
}

// TeamEntryByTeamAndWeek returns the team's entry for the exact week.
func (b *Book) TeamEntryByTeamAndWeek(teamID, weekStart string) (types.TeamWeeklyEntry, bool) {
	for _, e := range b.data.TeamWeeklyEntries {
		if e.TeamID == teamID && e.WeekStartDate == weekStart {
			return e, true
		}
	}
	return types.TeamWeeklyEntry{}, false
}

// UniqueWeeklyEntry reports whether no other entry shares the
// (studentID, weekStart) key. excludeID exempts the record being edited.
func (b *Book) UniqueWeeklyEntry(studentID, weekStart, excludeID string) bool {
	for _, e := range b.data.WeeklyEntries {
		if e.StudentID == studentID && e.WeekStartDate == weekStart && e.ID != excludeID {
			return false
		}
	}
	return true
}

// UniqueTeamWeeklyEntry reports whether no other entry shares the
// (teamID, weekStart) key. excludeID exempts the record being edited.
func (b *Book) UniqueTeamWeeklyEntry(teamID, weekStart, excludeID string) bool {
	for _, e := range b.data.TeamWeeklyEntries {
		if e.TeamID == teamID && e.WeekStartDate == weekStart && e.ID != excludeID {
			return false
		}
	}
	return true
}

// DuplicateLastWeekGoals returns the next-week goals of the most recent
// entry strictly before the given week, to pre-fill a new entry's goal list.
// Statuses are the caller's to reset.
func (b *Book) DuplicateLastWeekGoals(studentID, beforeWeek string) ([]string, bool) {
	for _, e := range b.EntriesByStudent(studentID) {
		if e.WeekStartDate < beforeWeek {
			goals := append([]string(nil), e.NextWeekGoals...)
			return goals, true
		}
	}
	return nil, false
}
