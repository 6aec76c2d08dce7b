package types

import "errors"

// Student enrollment statuses.
const (
	StudentActive   = "active"
	StudentInactive = "inactive"
)

// validStudentStatuses is the set of recognized student status values.
var validStudentStatuses = map[string]bool{
	StudentActive:   true,
	StudentInactive: true,
}

// Student entity errors.
var (
	ErrNameEmpty            = errors.New("full name must not be empty")
	ErrInvalidStudentStatus = errors.New("invalid student status")
	ErrStudentNotFound      = errors.New("student not found")
)

// Student represents one enrolled student. ID is an opaque unique token
// assigned at creation and never reassigned. Timestamps are RFC 3339 strings;
// StartDate is a week-aligned civil date (YYYY-MM-DD).
type Student struct {
	ID           string
	FullName     string
	Email        string
	Cohort       string
	StartDate    string
	Status       string
	Notes        string
	ResearchArea string
	Supervisor   string
	CreatedAt    string
	UpdatedAt    string
}

// Validate checks the student's shape invariants.
func (s Student) Validate() error {
	if s.FullName == "" {
		return ErrNameEmpty
	}
	if !validStudentStatuses[s.Status] {
		return ErrInvalidStudentStatus
	}
	return nil
}
