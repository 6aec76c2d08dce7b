package tabular

// Collection describes one entity collection's blob: its name, the stable
// path of its CSV blob in the remote store, and the fixed column order.
type Collection struct {
	Name    string
	Path    string
	Columns []string
}

// The five collections. Column orders are the persisted wire format and must
// not be reordered.
var (
	Students = Collection{
		Name: "students",
		Path: "data/students.csv",
		Columns: []string{
			"id", "full_name", "email", "cohort", "start_date", "status",
			"notes", "research_area", "supervisor", "created_at", "updated_at",
		},
	}

	WeeklyEntries = Collection{
		Name: "weekly_entries",
		Path: "data/weekly_entries.csv",
		Columns: []string{
			"id", "student_id", "week_start_date", "goals_set_json",
			"per_goal_status_json", "overall_status", "progress_notes",
			"next_week_goals_json", "created_by", "created_at", "updated_at",
		},
	}

	Teams = Collection{
		Name: "teams",
		Path: "data/teams.csv",
		Columns: []string{
			"id", "team_name", "description", "created_at", "updated_at",
		},
	}

	TeamMemberships = Collection{
		Name: "team_memberships",
		Path: "data/team_memberships.csv",
		Columns: []string{
			"id", "team_id", "student_id", "role_in_team", "created_at",
		},
	}

	TeamWeeklyEntries = Collection{
		Name: "team_weekly_entries",
		Path: "data/team_weekly_entries.csv",
		Columns: []string{
			"id", "team_id", "week_start_date", "team_goals_set_json",
			"team_overall_status", "team_progress_notes",
			"next_week_team_goals_json", "created_by", "created_at", "updated_at",
		},
	}
)

// All lists the collections in the order loads and saves walk them.
var All = []Collection{
	Students,
	WeeklyEntries,
	Teams,
	TeamMemberships,
	TeamWeeklyEntries,
}
