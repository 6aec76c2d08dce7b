package records

import (
	"github.com/mesh-intelligence/logbook/internal/week"
	"github.com/mesh-intelligence/logbook/pkg/types"
)

// StudentInput carries the caller-supplied fields for creating a student.
type StudentInput struct {
	FullName     string
	Email        string
	Cohort       string
	StartDate    string
	Status       string
	Notes        string
	ResearchArea string
	Supervisor   string
}

// WeeklyEntryInput carries the caller-supplied fields for creating or
// updating a weekly entry. The overall status is never part of the input;
// it is always derived from GoalStatuses.
type WeeklyEntryInput struct {
	StudentID     string
	WeekStartDate string
	Goals         []string
	GoalStatuses  []string
	ProgressNotes string
	NextWeekGoals []string
	CreatedBy     string
}

// TeamWeeklyEntryInput carries the caller-supplied fields for creating or
// updating a team weekly entry. GoalStatuses exist only to derive the
// overall status; they are not persisted per goal.
type TeamWeeklyEntryInput struct {
	TeamID        string
	WeekStartDate string
	Goals         []string
	GoalStatuses  []string
	ProgressNotes string
	NextWeekGoals []string
	CreatedBy     string
}

// CreateStudent validates and appends a new student. Status defaults to
// active; the start date must be week-aligned.
func (b *Book) CreateStudent(in StudentInput) (types.Student, error) {
	if in.Status == "" {
		in.Status = types.StudentActive
	}
	if !week.IsWeekStart(in.StartDate) {
		return types.Student{}, types.ErrNotWeekStart
	}

	now := nowStamp()
	s := types.Student{
		ID:           newID(),
		FullName:     in.FullName,
		Email:        in.Email,
		Cohort:       in.Cohort,
		StartDate:    in.StartDate,
		Status:       in.Status,
		Notes:        in.Notes,
		ResearchArea: in.ResearchArea,
		Supervisor:   in.Supervisor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Validate(); err != nil {
		return types.Student{}, err
	}

	b.data.Students = append(b.data.Students, s)
	return s, nil
}

// CreateTeam validates and appends a new team.
func (b *Book) CreateTeam(name, description string) (types.Team, error) {
	now := nowStamp()
	t := types.Team{
		ID:          newID(),
		TeamName:    name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.Validate(); err != nil {
		return types.Team{}, err
	}

	b.data.Teams = append(b.data.Teams, t)
	return t, nil
}

// AddMembership links a student to a team. Role defaults to "member".
func (b *Book) AddMembership(teamID, studentID, role string) (types.TeamMembership, error) {
	if _, ok := b.TeamByID(teamID); !ok {
		return types.TeamMembership{}, types.ErrTeamNotFound
	}
	if _, ok := b.StudentByID(studentID); !ok {
		return types.TeamMembership{}, types.ErrStudentNotFound
	}
	if role == "" {
		role = "member"
	}

	m := types.TeamMembership{
		ID:         newID(),
		TeamID:     teamID,
		StudentID:  studentID,
		RoleInTeam: role,
		CreatedAt:  nowStamp(),
	}
	b.data.TeamMemberships = append(b.data.TeamMemberships, m)
	return m, nil
}

// validateWeeklyEntryInput runs the pre-I/O gates shared by create and
// update: referenced student exists, the week key is a Monday, the entry
// shape holds, and the (student, week) key is unique excluding the record
// being edited.
func (b *Book) validateWeeklyEntryInput(in WeeklyEntryInput, excludeID string) error {
	if _, ok := b.StudentByID(in.StudentID); !ok {
		return types.ErrStudentNotFound
	}
	if !week.IsWeekStart(in.WeekStartDate) {
		return types.ErrNotWeekStart
	}
	probe := types.WeeklyEntry{
		Goals:         in.Goals,
		GoalStatuses:  in.GoalStatuses,
		NextWeekGoals: in.NextWeekGoals,
	}
	if err := probe.Validate(); err != nil {
		return err
	}
	if !b.UniqueWeeklyEntry(in.StudentID, in.WeekStartDate, excludeID) {
		return types.ErrDuplicateEntry
	}
	return nil
}

// CreateWeeklyEntry validates and appends a new weekly entry, deriving the
// overall status and stamping creation timestamps.
func (b *Book) CreateWeeklyEntry(in WeeklyEntryInput) (types.WeeklyEntry, error) {
	if err := b.validateWeeklyEntryInput(in, ""); err != nil {
		return types.WeeklyEntry{}, err
	}

	now := nowStamp()
	e := types.WeeklyEntry{
		ID:            newID(),
		StudentID:     in.StudentID,
		WeekStartDate: in.WeekStartDate,
		Goals:         in.Goals,
		GoalStatuses:  in.GoalStatuses,
		OverallStatus: types.DeriveOverallStatus(in.GoalStatuses),
		ProgressNotes: in.ProgressNotes,
		NextWeekGoals: in.NextWeekGoals,
		CreatedBy:     in.CreatedBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	b.data.WeeklyEntries = append(b.data.WeeklyEntries, e)
	return e, nil
}

// UpdateWeeklyEntry replaces the mutable fields of an existing entry by full
// record replacement. ID, CreatedBy, and CreatedAt are preserved; UpdatedAt
// advances; the overall status is recomputed.
func (b *Book) UpdateWeeklyEntry(id string, in WeeklyEntryInput) (types.WeeklyEntry, error) {
	idx := -1
	for i, e := range b.data.WeeklyEntries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return types.WeeklyEntry{}, types.ErrNotFound
	}
	if err := b.validateWeeklyEntryInput(in, id); err != nil {
		return types.WeeklyEntry{}, err
	}

	e := b.data.WeeklyEntries[idx]
	e.StudentID = in.StudentID
	e.WeekStartDate = in.WeekStartDate
	e.Goals = in.Goals
	e.GoalStatuses = in.GoalStatuses
	e.OverallStatus = types.DeriveOverallStatus(in.GoalStatuses)
	e.ProgressNotes = in.ProgressNotes
	e.NextWeekGoals = in.NextWeekGoals
	e.UpdatedAt = nowStamp()

	b.data.WeeklyEntries[idx] = e
	return e, nil
}

// validateTeamWeeklyEntryInput mirrors validateWeeklyEntryInput for team
// entries.
func (b *Book) validateTeamWeeklyEntryInput(in TeamWeeklyEntryInput, excludeID string) error {
	if _, ok := b.TeamByID(in.TeamID); !ok {
		return types.ErrTeamNotFound
	}
	if !week.IsWeekStart(in.WeekStartDate) {
		return types.ErrNotWeekStart
	}
	probe := types.WeeklyEntry{
		Goals:         in.Goals,
		GoalStatuses:  in.GoalStatuses,
		NextWeekGoals: in.NextWeekGoals,
	}
	if err := probe.Validate(); err != nil {
		return err
	}
	if !b.UniqueTeamWeeklyEntry(in.TeamID, in.WeekStartDate, excludeID) {
		return types.ErrDuplicateTeamEntry
	}
	return nil
}

// CreateTeamWeeklyEntry validates and appends a new team weekly entry.
func (b *Book) CreateTeamWeeklyEntry(in TeamWeeklyEntryInput) (types.TeamWeeklyEntry, error) {
	if err := b.validateTeamWeeklyEntryInput(in, ""); err != nil {
		return types.TeamWeeklyEntry{}, err
	}

	now := nowStamp()
	e := types.TeamWeeklyEntry{
		ID:            newID(),
		TeamID:        in.TeamID,
		WeekStartDate: in.WeekStartDate,
		Goals:         in.Goals,
		OverallStatus: types.DeriveOverallStatus(in.GoalStatuses),
		ProgressNotes: in.ProgressNotes,
		NextWeekGoals: in.NextWeekGoals,
		CreatedBy:     in.CreatedBy,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	b.data.TeamWeeklyEntries = append(b.data.TeamWeeklyEntries, e)
	return e, nil
}

// UpdateTeamWeeklyEntry replaces the mutable fields of an existing team
// entry, recomputing the overall status and advancing UpdatedAt.
func (b *Book) UpdateTeamWeeklyEntry(id string, in TeamWeeklyEntryInput) (types.TeamWeeklyEntry, error) {
	idx := -1
	for i, e := range b.data.TeamWeeklyEntries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return types.TeamWeeklyEntry{}, types.ErrNotFound
	}
	if err := b.validateTeamWeeklyEntryInput(in, id); err != nil {
		return types.TeamWeeklyEntry{}, err
	}

	e := b.data.TeamWeeklyEntries[idx]
	e.TeamID = in.TeamID
	e.WeekStartDate = in.WeekStartDate
	e.Goals = in.Goals
	e.OverallStatus = types.DeriveOverallStatus(in.GoalStatuses)
	e.ProgressNotes = in.ProgressNotes
	e.NextWeekGoals = in.NextWeekGoals
	e.UpdatedAt = nowStamp()

	b.data.TeamWeeklyEntries[idx] = e
	return e, nil
}
