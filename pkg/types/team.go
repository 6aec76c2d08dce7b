package types

import "errors"

// Team entity errors.
var (
	ErrTeamNameEmpty      = errors.New("team name must not be empty")
	ErrTeamNotFound       = errors.New("team not found")
	ErrDuplicateTeamEntry = errors.New("an entry already exists for this team and week")
)

// Team represents a research team.
type Team struct {
	ID          string
	TeamName    string
	Description string
	CreatedAt   string
	UpdatedAt   string
}

// Validate checks the team's shape invariants.
func (t Team) Validate() error {
	if t.TeamName == "" {
		return ErrTeamNameEmpty
	}
	return nil
}

// TeamMembership links a student to a team. Memberships are created once and
// never mutated, so they carry no UpdatedAt.
type TeamMembership struct {
	ID         string
	TeamID     string
	StudentID  string
	RoleInTeam string
	CreatedAt  string
}

// TeamWeeklyEntry is a team's progress report for one reporting week, keyed
// by (TeamID, WeekStartDate) the same way WeeklyEntry is keyed per student.
type TeamWeeklyEntry struct {
	ID            string
	TeamID        string
	WeekStartDate string
	Goals         []string
	OverallStatus string
	ProgressNotes string
	NextWeekGoals []string
	CreatedBy     string
	CreatedAt     string
	UpdatedAt     string
}
