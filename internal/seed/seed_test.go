package seed

import (
	"testing"

	"github.com/mesh-intelligence/logbook/internal/week"
	"github.com/mesh-intelligence/logbook/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoShape(t *testing.T) {
	d, err := Demo()
	require.NoError(t, err)

	assert.Len(t, d.Students, 20)
	assert.Len(t, d.WeeklyEntries, 20*6)
	assert.Len(t, d.Teams, 3)
	assert.Len(t, d.TeamMemberships, 20)
	assert.Len(t, d.TeamWeeklyEntries, 3*3)
}

func TestDemoInvariants(t *testing.T) {
	d, err := Demo()
	require.NoError(t, err)

	t.Run("all week keys are mondays", func(t *testing.T) {
		for _, e := range d.WeeklyEntries {
			assert.True(t, week.IsWeekStart(e.WeekStartDate), e.WeekStartDate)
		}
		for _, e := range d.TeamWeeklyEntries {
			assert.True(t, week.IsWeekStart(e.WeekStartDate), e.WeekStartDate)
		}
		for _, s := range d.Students {
			assert.True(t, week.IsWeekStart(s.StartDate), s.StartDate)
		}
	})

	t.Run("entry keys are unique", func(t *testing.T) {
		seen := make(map[[2]string]bool)
		for _, e := range d.WeeklyEntries {
			key := [2]string{e.StudentID, e.WeekStartDate}
			assert.False(t, seen[key], "duplicate entry for %v", key)
			seen[key] = true
		}
	})

	t.Run("overall statuses match their goal statuses", func(t *testing.T) {
		for _, e := range d.WeeklyEntries {
			assert.Equal(t, types.DeriveOverallStatus(e.GoalStatuses), e.OverallStatus)
			assert.Len(t, e.GoalStatuses, len(e.Goals))
		}
	})

	t.Run("ids are unique across collections", func(t *testing.T) {
		seen := make(map[string]bool)
		add := func(id string) {
			assert.NotEmpty(t, id)
			assert.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
		for _, s := range d.Students {
			add(s.ID)
		}
		for _, e := range d.WeeklyEntries {
			add(e.ID)
		}
		for _, tm := range d.Teams {
			add(tm.ID)
		}
		for _, m := range d.TeamMemberships {
			add(m.ID)
		}
		for _, e := range d.TeamWeeklyEntries {
			add(e.ID)
		}
	})

	t.Run("memberships reference real students and teams", func(t *testing.T) {
		students := make(map[string]bool)
		for _, s := range d.Students {
			students[s.ID] = true
		}
		teams := make(map[string]bool)
		for _, tm := range d.Teams {
			teams[tm.ID] = true
		}
		for _, m := range d.TeamMemberships {
			assert.True(t, students[m.StudentID])
			assert.True(t, teams[m.TeamID])
		}
	})
}

func TestEmailFor(t *testing.T) {
	assert.Equal(t, "alice.chen@ust.hk", emailFor("Alice Chen"))
	assert.Equal(t, "prof..o.brien@ust.hk", emailFor("Prof. O'Brien"))
}
