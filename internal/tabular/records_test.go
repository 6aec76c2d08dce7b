package tabular

import (
	"strings"
	"testing"

	"github.com/mesh-intelligence/logbook/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentsRoundTrip(t *testing.T) {
	students := []types.Student{
		{
			ID:           "s1",
			FullName:     "Chen, Alice",
			Email:        "alice.chen@ust.hk",
			Cohort:       "MPhil TIE 2025",
			StartDate:    "2024-09-02",
			Status:       types.StudentActive,
			Notes:        "supervisor said \"promising\"\nfollow up next term",
			ResearchArea: "AI/Machine Learning",
			Supervisor:   "Prof. Li",
			CreatedAt:    "2025-01-06T03:00:00Z",
			UpdatedAt:    "2025-01-06T03:00:00Z",
		},
		{
			ID:       "s2",
			FullName: "Bob Zhang",
			Status:   types.StudentInactive,
		},
	}

	decoded, err := DecodeStudents(EncodeStudents(students))
	require.NoError(t, err)
	assert.Equal(t, students, decoded)
}

func TestStudentsColumnOrder(t *testing.T) {
	text := EncodeStudents(nil)
	header := strings.SplitN(text, "\n", 2)[0]
	assert.Equal(t,
		"id,full_name,email,cohort,start_date,status,notes,research_area,supervisor,created_at,updated_at",
		header)
}

func TestWeeklyEntriesRoundTrip(t *testing.T) {
	entries := []types.WeeklyEntry{
		{
			ID:            "e1",
			StudentID:     "s1",
			WeekStartDate: "2025-01-06",
			Goals:         []string{"draft methodology, 2000 words", "read \"Attention is All You Need\""},
			GoalStatuses:  []string{types.StatusAchieved, types.StatusPartial},
			OverallStatus: types.StatusPartial,
			ProgressNotes: "good week\nsome blockers remain",
			NextWeekGoals: []string{"revise draft"},
			CreatedBy:     "demo_user",
			CreatedAt:     "2025-01-06T03:00:00Z",
			UpdatedAt:     "2025-01-07T03:00:00Z",
		},
	}

	decoded, err := DecodeWeeklyEntries(EncodeWeeklyEntries(entries))
	require.NoError(t, err)
	assert.Equal(t, entries, decoded)
}

func TestWeeklyEntriesListCellsAreJSON(t *testing.T) {
	entries := []types.WeeklyEntry{{
		ID:            "e1",
		Goals:         []string{"a", "b"},
		GoalStatuses:  []string{types.StatusAchieved, types.StatusAchieved},
		NextWeekGoals: []string{"c"},
	}}
	text := EncodeWeeklyEntries(entries)
	assert.Contains(t, text, `"[""a"",""b""]"`)
}

func TestDecodeWeeklyEntriesEmptyListCell(t *testing.T) {
	text := "id,student_id,week_start_date,goals_set_json,per_goal_status_json,overall_status,progress_notes,next_week_goals_json,created_by,created_at,updated_at\n" +
		"e1,s1,2025-01-06,,,not_achieved,,,seed,2025-01-06T03:00:00Z,2025-01-06T03:00:00Z\n"
	entries, err := DecodeWeeklyEntries(text)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].Goals)
	assert.Empty(t, entries[0].GoalStatuses)
}

func TestDecodeWeeklyEntriesMalformedListCell(t *testing.T) {
	text := "id,student_id,week_start_date,goals_set_json,per_goal_status_json,overall_status,progress_notes,next_week_goals_json,created_by,created_at,updated_at\n" +
		"e1,s1,2025-01-06,not-json,[],not_achieved,,[],seed,x,x\n"
	_, err := DecodeWeeklyEntries(text)
	assert.Error(t, err)
}

func TestTeamCollectionsRoundTrip(t *testing.T) {
	teams := []types.Team{
		{ID: "t1", TeamName: "AI/ML", Description: "Research on artificial intelligence and machine learning.", CreatedAt: "x", UpdatedAt: "x"},
	}
	memberships := []types.TeamMembership{
		{ID: "m1", TeamID: "t1", StudentID: "s1", RoleInTeam: "member", CreatedAt: "x"},
	}
	teamEntries := []types.TeamWeeklyEntry{
		{
			ID:            "te1",
			TeamID:        "t1",
			WeekStartDate: "2025-01-06",
			Goals:         []string{"ship demo"},
			OverallStatus: types.StatusAchieved,
			ProgressNotes: "demo shipped",
			NextWeekGoals: []string{"collect feedback"},
			CreatedBy:     "seed",
			CreatedAt:     "x",
			UpdatedAt:     "x",
		},
	}

	gotTeams, err := DecodeTeams(EncodeTeams(teams))
	require.NoError(t, err)
	assert.Equal(t, teams, gotTeams)

	gotMemberships, err := DecodeTeamMemberships(EncodeTeamMemberships(memberships))
	require.NoError(t, err)
	assert.Equal(t, memberships, gotMemberships)

	gotEntries, err := DecodeTeamWeeklyEntries(EncodeTeamWeeklyEntries(teamEntries))
	require.NoError(t, err)
	assert.Equal(t, teamEntries, gotEntries)
}

func TestEncodeCollectionDispatch(t *testing.T) {
	d := types.NewDataset()
	d.Students = append(d.Students, types.Student{ID: "s1", FullName: "Alice Chen", Status: types.StudentActive})

	for _, c := range All {
		text, err := EncodeCollection(c, d)
		require.NoError(t, err)
		assert.Equal(t, strings.Join(c.Columns, ","), strings.SplitN(text, "\n", 2)[0])
	}

	_, err := EncodeCollection(Collection{Name: "bogus"}, d)
	assert.Error(t, err)
}

func TestDecodeCollectionIntoReplacesContents(t *testing.T) {
	d := types.NewDataset()
	d.Teams = append(d.Teams, types.Team{ID: "stale"})

	err := DecodeCollectionInto(Teams, d, EncodeTeams([]types.Team{{ID: "t1", TeamName: "IoT"}}))
	require.NoError(t, err)
	require.Len(t, d.Teams, 1)
	assert.Equal(t, "t1", d.Teams[0].ID)
}
