// Entity hydration between typed records and CSV rows. List-valued fields
// (goals, per-goal statuses, next-week goals) are stored as JSON arrays
// inside their *_json columns.
package tabular

import (
	"encoding/json"
	"fmt"

	"github.com/mesh-intelligence/logbook/pkg/types"
)

// marshalList encodes a string list for a *_json column. A nil list encodes
// as an empty JSON array so the cell is never blank.
func marshalList(list []string) string {
	if list == nil {
		list = []string{}
	}
	b, _ := json.Marshal(list)
	return string(b)
}

// unmarshalList decodes a *_json cell. An empty cell decodes to an empty
// list rather than failing, matching the tolerance of the row codec.
func unmarshalList(cell string) ([]string, error) {
	if cell == "" {
		return []string{}, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(cell), &list); err != nil {
		return nil, fmt.Errorf("parsing list cell %q: %w", cell, err)
	}
	return list, nil
}

// EncodeStudents renders the students collection as a CSV blob.
func EncodeStudents(students []types.Student) string {
	rows := make([]Row, 0, len(students))
	for _, s := range students {
		rows = append(rows, Row{
			"id":            s.ID,
			"full_name":     s.FullName,
			"email":         s.Email,
			"cohort":        s.Cohort,
			"start_date":    s.StartDate,
			"status":        s.Status,
			"notes":         s.Notes,
			"research_area": s.ResearchArea,
			"supervisor":    s.Supervisor,
			"created_at":    s.CreatedAt,
			"updated_at":    s.UpdatedAt,
		})
	}
	return EncodeRows(rows, Students.Columns)
}

// DecodeStudents parses the students CSV blob.
func DecodeStudents(text string) ([]types.Student, error) {
	rows, err := DecodeRows(text)
	if err != nil {
		return nil, err
	}
	students := make([]types.Student, 0, len(rows))
	for _, r := range rows {
		students = append(students, types.Student{
			ID:           r["id"],
			FullName:     r["full_name"],
			Email:        r["email"],
			Cohort:       r["cohort"],
			StartDate:    r["start_date"],
			Status:       r["status"],
			Notes:        r["notes"],
			ResearchArea: r["research_area"],
			Supervisor:   r["supervisor"],
			CreatedAt:    r["created_at"],
			UpdatedAt:    r["updated_at"],
		})
	}
	return students, nil
}

// EncodeWeeklyEntries renders the weekly entries collection as a CSV blob.
func EncodeWeeklyEntries(entries []types.WeeklyEntry) string {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			"id":                   e.ID,
			"student_id":           e.StudentID,
			"week_start_date":      e.WeekStartDate,
			"goals_set_json":       marshalList(e.Goals),
			"per_goal_status_json": marshalList(e.GoalStatuses),
			"overall_status":       e.OverallStatus,
			"progress_notes":       e.ProgressNotes,
			"next_week_goals_json": marshalList(e.NextWeekGoals),
			"created_by":           e.CreatedBy,
			"created_at":           e.CreatedAt,
			"updated_at":           e.UpdatedAt,
		})
	}
	return EncodeRows(rows, WeeklyEntries.Columns)
}

// DecodeWeeklyEntries parses the weekly entries CSV blob.
func DecodeWeeklyEntries(text string) ([]types.WeeklyEntry, error) {
	rows, err := DecodeRows(text)
	if err != nil {
		return nil, err
	}
	entries := make([]types.WeeklyEntry, 0, len(rows))
	for _, r := range rows {
		goals, err := unmarshalList(r["goals_set_json"])
		if err != nil {
			return nil, err
		}
		statuses, err := unmarshalList(r["per_goal_status_json"])
		if err != nil {
			return nil, err
		}
		next, err := unmarshalList(r["next_week_goals_json"])
		if err != nil {
			return nil, err
		}
		entries = append(entries, types.WeeklyEntry{
			ID:            r["id"],
			StudentID:     r["student_id"],
			WeekStartDate: r["week_start_date"],
			Goals:         goals,
			GoalStatuses:  statuses,
			OverallStatus: r["overall_status"],
			ProgressNotes: r["progress_notes"],
			NextWeekGoals: next,
			CreatedBy:     r["created_by"],
			CreatedAt:     r["created_at"],
			UpdatedAt:     r["updated_at"],
		})
	}
	return entries, nil
}

// EncodeTeams renders the teams collection as a CSV blob.
func EncodeTeams(teams []types.Team) string {
	rows := make([]Row, 0, len(teams))
	for _, t := range teams {
		rows = append(rows, Row{
			"id":          t.ID,
			"team_name":   t.TeamName,
			"description": t.Description,
			"created_at":  t.CreatedAt,
			"updated_at":  t.UpdatedAt,
		})
	}
	return EncodeRows(rows, Teams.Columns)
}

// DecodeTeams parses the teams CSV blob.
func DecodeTeams(text string) ([]types.Team, error) {
	rows, err := DecodeRows(text)
	if err != nil {
		return nil, err
	}
	teams := make([]types.Team, 0, len(rows))
	for _, r := range rows {
		teams = append(teams, types.Team{
			ID:          r["id"],
			TeamName:    r["team_name"],
			Description: r["description"],
			CreatedAt:   r["created_at"],
			UpdatedAt:   r["updated_at"],
		})
	}
	return teams, nil
}

// EncodeTeamMemberships renders the team memberships collection as a CSV blob.
func EncodeTeamMemberships(memberships []types.TeamMembership) string {
	rows := make([]Row, 0, len(memberships))
	for _, m := range memberships {
		rows = append(rows, Row{
			"id":           m.ID,
			"team_id":      m.TeamID,
			"student_id":   m.StudentID,
			"role_in_team": m.RoleInTeam,
			"created_at":   m.CreatedAt,
		})
	}
	return EncodeRows(rows, TeamMemberships.Columns)
}

// DecodeTeamMemberships parses the team memberships CSV blob.
func DecodeTeamMemberships(text string) ([]types.TeamMembership, error) {
	rows, err := DecodeRows(text)
	if err != nil {
		return nil, err
	}
	memberships := make([]types.TeamMembership, 0, len(rows))
	for _, r := range rows {
		memberships = append(memberships, types.TeamMembership{
			ID:         r["id"],
			TeamID:     r["team_id"],
			StudentID:  r["student_id"],
			RoleInTeam: r["role_in_team"],
			CreatedAt:  r["created_at"],
		})
	}
	return memberships, nil
}

// EncodeTeamWeeklyEntries renders the team weekly entries collection as a
// CSV blob.
func EncodeTeamWeeklyEntries(entries []types.TeamWeeklyEntry) string {
	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{
			"id":                        e.ID,
			"team_id":                   e.TeamID,
			"week_start_date":           e.WeekStartDate,
			"team_goals_set_json":       marshalList(e.Goals),
			"team_overall_status":       e.OverallStatus,
			"team_progress_notes":       e.ProgressNotes,
			"next_week_team_goals_json": marshalList(e.NextWeekGoals),
			"created_by":                e.CreatedBy,
			"created_at":                e.CreatedAt,
			"updated_at":                e.UpdatedAt,
		})
	}
	return EncodeRows(rows, TeamWeeklyEntries.Columns)
}

// DecodeTeamWeeklyEntries parses the team weekly entries CSV blob.
func DecodeTeamWeeklyEntries(text string) ([]types.TeamWeeklyEntry, error) {
	rows, err := DecodeRows(text)
	if err != nil {
		return nil, err
	}
	entries := make([]types.TeamWeeklyEntry, 0, len(rows))
	for _, r := range rows {
		goals, err := unmarshalList(r["team_goals_set_json"])
		if err != nil {
			return nil, err
		}
		next, err := unmarshalList(r["next_week_team_goals_json"])
		if err != nil {
			return nil, err
		}
		entries = append(entries, types.TeamWeeklyEntry{
			ID:            r["id"],
			TeamID:        r["team_id"],
			WeekStartDate: r["week_start_date"],
			Goals:         goals,
			OverallStatus: r["team_overall_status"],
			ProgressNotes: r["team_progress_notes"],
			NextWeekGoals: next,
			CreatedBy:     r["created_by"],
			CreatedAt:     r["created_at"],
			UpdatedAt:     r["updated_at"],
		})
	}
	return entries, nil
}

// EncodeCollection renders the named collection from the dataset.
func EncodeCollection(c Collection, d *types.Dataset) (string, error) {
	switch c.Name {
	case Students.Name:
		return EncodeStudents(d.Students), nil
	case WeeklyEntries.Name:
		return EncodeWeeklyEntries(d.WeeklyEntries), nil
	case Teams.Name:
		return EncodeTeams(d.Teams), nil
	case TeamMemberships.Name:
		return EncodeTeamMemberships(d.TeamMemberships), nil
	case TeamWeeklyEntries.Name:
		return EncodeTeamWeeklyEntries(d.TeamWeeklyEntries), nil
	default:
		return "", fmt.Errorf("unknown collection %q", c.Name)
	}
}

// DecodeCollectionInto parses a CSV blob into the named collection of the
// dataset, replacing its current contents.
func DecodeCollectionInto(c Collection, d *types.Dataset, text string) error {
	switch c.Name {
	case Students.Name:
		students, err := DecodeStudents(text)
		if err != nil {
			return err
		}
		d.Students = students
	case WeeklyEntries.Name:
		entries, err := DecodeWeeklyEntries(text)
		if err != nil {
			return err
		}
		d.WeeklyEntries = entries
	case Teams.Name:
		teams, err := DecodeTeams(text)
		if err != nil {
			return err
		}
		d.Teams = teams
	case TeamMemberships.Name:
		memberships, err := DecodeTeamMemberships(text)
		if err != nil {
			return err
		}
		d.TeamMemberships = memberships
	case TeamWeeklyEntries.Name:
		entries, err := DecodeTeamWeeklyEntries(text)
		if err != nil {
			return err
		}
		d.TeamWeeklyEntries = entries
	default:
		return fmt.Errorf("unknown collection %q", c.Name)
	}
	return nil
}
