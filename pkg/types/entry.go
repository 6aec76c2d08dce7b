package types

import "errors"

// Weekly entry validation errors.
var (
	ErrGoalsEmpty          = errors.New("at least one goal is required")
	ErrNextGoalsEmpty      = errors.New("at least one next week goal is required")
	ErrStatusCountMismatch = errors.New("one status is required per goal")
	ErrInvalidGoalStatus   = errors.New("invalid goal status")
	ErrNotWeekStart        = errors.New("week start date must be a Monday")
	ErrDuplicateEntry      = errors.New("an entry already exists for this student and week")
)

// WeeklyEntry is one student's progress report for one reporting week.
// WeekStartDate is the Monday (Hong Kong civil calendar) identifying the
// week; at most one entry exists per (StudentID, WeekStartDate).
// OverallStatus is derived from GoalStatuses and never hand-set.
type WeeklyEntry struct {
	ID            string
	StudentID     string
	WeekStartDate string
	Goals         []string
	GoalStatuses  []string
	OverallStatus string
	ProgressNotes string
	NextWeekGoals []string
	CreatedBy     string
	CreatedAt     string
	UpdatedAt     string
}

// Validate checks the entry's shape invariants: non-empty goal lists, one
// recognized status per goal. Week alignment and uniqueness are enforced by
// the repository, which owns the calendar and the sibling records.
func (e WeeklyEntry) Validate() error {
	if len(e.Goals) == 0 {
		return ErrGoalsEmpty
	}
	if len(e.NextWeekGoals) == 0 {
		return ErrNextGoalsEmpty
	}
	if len(e.GoalStatuses) != len(e.Goals) {
		return ErrStatusCountMismatch
	}
	for _, s := range e.GoalStatuses {
		if !ValidGoalStatus(s) {
			return ErrInvalidGoalStatus
		}
	}
	return nil
}
