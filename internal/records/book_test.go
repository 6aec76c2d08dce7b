package records

import (
	"testing"
	"time"

	"github.com/mesh-intelligence/logbook/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday and the weeks before it, for week-keyed fixtures.
const (
	monday     = "2025-01-06"
	lastMonday = "2024-12-30"
	tuesday    = "2025-01-07"
)

func newTestBook(t *testing.T) *Book {
	t.Helper()
	b := NewBook(nil)

	_, err := b.CreateStudent(StudentInput{
		FullName:     "Alice Chen",
		Email:        "alice.chen@ust.hk",
		Cohort:       "MPhil TIE 2025",
		StartDate:    lastMonday,
		ResearchArea: "AI/Machine Learning",
		Supervisor:   "Prof. Li",
	})
	require.NoError(t, err)

	_, err = b.CreateStudent(StudentInput{
		FullName:  "Bob Zhang",
		StartDate: lastMonday,
		Status:    types.StudentInactive,
	})
	require.NoError(t, err)

	return b
}

func entryInput(b *Book, weekStart string) WeeklyEntryInput {
	return WeeklyEntryInput{
		StudentID:     b.Data().Students[0].ID,
		WeekStartDate: weekStart,
		Goals:         []string{"write chapter"},
		GoalStatuses:  []string{types.StatusAchieved},
		ProgressNotes: "done",
		NextWeekGoals: []string{"revise chapter"},
		CreatedBy:     "demo_user",
	}
}

func TestCreateStudent(t *testing.T) {
	b := NewBook(nil)

	s, err := b.CreateStudent(StudentInput{FullName: "Alice Chen", StartDate: monday})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, types.StudentActive, s.Status, "status defaults to active")
	assert.Equal(t, s.CreatedAt, s.UpdatedAt)

	t.Run("misaligned start date rejected", func(t *testing.T) {
		_, err := b.CreateStudent(StudentInput{FullName: "Carol Liu", StartDate: tuesday})
		assert.ErrorIs(t, err, types.ErrNotWeekStart)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := b.CreateStudent(StudentInput{StartDate: monday})
		assert.ErrorIs(t, err, types.ErrNameEmpty)
	})
}

func TestCreateWeeklyEntry(t *testing.T) {
	b := newTestBook(t)

	e, err := b.CreateWeeklyEntry(entryInput(b, monday))
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, types.StatusAchieved, e.OverallStatus, "overall status is derived, not supplied")
	assert.Len(t, b.Data().WeeklyEntries, 1)
}

func TestCreateWeeklyEntryGates(t *testing.T) {
	b := newTestBook(t)
	_, err := b.CreateWeeklyEntry(entryInput(b, monday))
	require.NoError(t, err)

	tests := []struct {
		name    string
		mutate  func(in *WeeklyEntryInput)
		wantErr error
	}{
		{
			name:    "duplicate week rejected before any write",
			mutate:  func(in *WeeklyEntryInput) {},
			wantErr: types.ErrDuplicateEntry,
		},
		{
			name: "non-monday week rejected, never normalized",
			mutate: func(in *WeeklyEntryInput) {
				in.WeekStartDate = tuesday
			},
			wantErr: types.ErrNotWeekStart,
		},
		{
			name: "unknown student rejected",
			mutate: func(in *WeeklyEntryInput) {
				in.StudentID = "missing"
			},
			wantErr: types.ErrStudentNotFound,
		},
		{
			name: "empty goals rejected",
			mutate: func(in *WeeklyEntryInput) {
				in.WeekStartDate = lastMonday
				in.Goals = nil
				in.GoalStatuses = nil
			},
			wantErr: types.ErrGoalsEmpty,
		},
		{
			name: "status count mismatch rejected",
			mutate: func(in *WeeklyEntryInput) {
				in.WeekStartDate = lastMonday
				in.GoalStatuses = []string{types.StatusAchieved, types.StatusPartial}
			},
			wantErr: types.ErrStatusCountMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := entryInput(b, monday)
			tt.mutate(&in)
			_, err := b.CreateWeeklyEntry(in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Len(t, b.Data().WeeklyEntries, 1, "record state must be unchanged on rejection")
		})
	}
}

func TestUpdateWeeklyEntry(t *testing.T) {
	b := newTestBook(t)
	created, err := b.CreateWeeklyEntry(entryInput(b, monday))
	require.NoError(t, err)

	// Pin the clock forward so UpdatedAt visibly advances.
	orig := timeNow
	timeNow = func() time.Time { return time.Now().Add(2 * time.Second) }
	defer func() { timeNow = orig }()

	in := entryInput(b, monday)
	in.GoalStatuses = []string{types.StatusNotAchieved}
	in.ProgressNotes = "slipped"

	updated, err := b.UpdateWeeklyEntry(created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "created_at is immutable")
	assert.Equal(t, created.CreatedBy, updated.CreatedBy)
	assert.Equal(t, types.StatusNotAchieved, updated.OverallStatus)
	assert.GreaterOrEqual(t, updated.UpdatedAt, created.UpdatedAt)

	t.Run("same week allowed for the record being edited", func(t *testing.T) {
		_, err := b.UpdateWeeklyEntry(created.ID, entryInput(b, monday))
		assert.NoError(t, err)
	})

	t.Run("unknown id rejected", func(t *testing.T) {
		_, err := b.UpdateWeeklyEntry("missing", entryInput(b, monday))
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestEntriesByStudentSortedDescending(t *testing.T) {
	b := newTestBook(t)
	studentID := b.Data().Students[0].ID

	for _, w := range []string{"2024-12-23", monday, lastMonday} {
		_, err := b.CreateWeeklyEntry(entryInput(b, w))
		require.NoError(t, err)
	}

	entries := b.EntriesByStudent(studentID)
	require.Len(t, entries, 3)
	assert.Equal(t, monday, entries[0].WeekStartDate)
	assert.Equal(t, lastMonday, entries[1].WeekStartDate)
	assert.Equal(t, "2024-12-23", entries[2].WeekStartDate)
}

func TestMembershipJoins(t *testing.T) {
	b := newTestBook(t)
	alice := b.Data().Students[0]
	bob := b.Data().Students[1]

	team, err := b.CreateTeam("AI/ML", "Research on artificial intelligence and machine learning.")
	require.NoError(t, err)
	other, err := b.CreateTeam("IoT", "Internet of Things systems.")
	require.NoError(t, err)

	_, err = b.AddMembership(team.ID, alice.ID, "")
	require.NoError(t, err)
	_, err = b.AddMembership(other.ID, bob.ID, "lead")
	require.NoError(t, err)

	teams := b.TeamsByStudent(alice.ID)
	require.Len(t, teams, 1)
	assert.Equal(t, "AI/ML", teams[0].TeamName)

	members := b.MembersByTeam(other.ID)
	require.Len(t, members, 1)
	assert.Equal(t, "Bob Zhang", members[0].FullName)

	t.Run("unknown team rejected", func(t *testing.T) {
		_, err := b.AddMembership("missing", alice.ID, "")
		assert.ErrorIs(t, err, types.ErrTeamNotFound)
	})

	t.Run("unknown student rejected", func(t *testing.T) {
		_, err := b.AddMembership(team.ID, "missing", "")
		assert.ErrorIs(t, err, types.ErrStudentNotFound)
	})
}

func TestTeamWeeklyEntryLifecycle(t *testing.T) {
	b := newTestBook(t)
	team, err := b.CreateTeam("EdTech", "Technology for education.")
	require.NoError(t, err)

	in := TeamWeeklyEntryInput{
		TeamID:        team.ID,
		WeekStartDate: monday,
		Goals:         []string{"ship demo", "user interviews"},
		GoalStatuses:  []string{types.StatusAchieved, types.StatusNotAchieved},
		ProgressNotes: "demo shipped, interviews pending",
		NextWeekGoals: []string{"run interviews"},
		CreatedBy:     "demo_user",
	}

	e, err := b.CreateTeamWeeklyEntry(in)
	require.NoError(t, err)
	assert.Equal(t, types.StatusPartial, e.OverallStatus)

	t.Run("duplicate team week rejected", func(t *testing.T) {
		_, err := b.CreateTeamWeeklyEntry(in)
		assert.ErrorIs(t, err, types.ErrDuplicateTeamEntry)
	})

	in2 := in
	in2.GoalStatuses = []string{types.StatusAchieved, types.StatusAchieved}
	updated, err := b.UpdateTeamWeeklyEntry(e.ID, in2)
	require.NoError(t, err)
	assert.Equal(t, types.StatusAchieved, updated.OverallStatus)
}

func TestDuplicateLastWeekGoals(t *testing.T) {
	b := newTestBook(t)

	in := entryInput(b, lastMonday)
	in.NextWeekGoals = []string{"revise chapter", "plot results"}
	_, err := b.CreateWeeklyEntry(in)
	require.NoError(t, err)

	goals, ok := b.DuplicateLastWeekGoals(in.StudentID, monday)
	require.True(t, ok)
	assert.Equal(t, []string{"revise chapter", "plot results"}, goals)

	_, ok = b.DuplicateLastWeekGoals(in.StudentID, lastMonday)
	assert.False(t, ok, "no prior week exists before the earliest entry")
}

func TestSummarize(t *testing.T) {
	b := newTestBook(t)

	_, err := b.CreateWeeklyEntry(entryInput(b, monday))
	require.NoError(t, err)

	sum := b.Summarize(monday)
	assert.Equal(t, 1, sum.ActiveStudents, "inactive students are excluded")
	assert.Equal(t, 1, sum.WithEntry)
	assert.Equal(t, 1, sum.EntriesThisWeek)
	assert.Equal(t, 1, sum.Achieved)
}
