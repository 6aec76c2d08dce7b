package types

import "errors"

// ErrNotFound means no record exists with the requested ID.
var ErrNotFound = errors.New("record not found")

// Dataset holds the five decoded collections. It is the single in-memory
// source of truth for a running session; mutations go through the records
// package and become durable only after a successful save through the store.
// Collection order is insertion order and is preserved across encode/decode.
type Dataset struct {
	Students          []Student
	WeeklyEntries     []WeeklyEntry
	Teams             []Team
	TeamMemberships   []TeamMembership
	TeamWeeklyEntries []TeamWeeklyEntry
}

// NewDataset returns an empty Dataset with non-nil slices.
func NewDataset() *Dataset {
	return &Dataset{
		Students:          []Student{},
		WeeklyEntries:     []WeeklyEntry{},
		Teams:             []Team{},
		TeamMemberships:   []TeamMembership{},
		TeamWeeklyEntries: []TeamWeeklyEntry{},
	}
}
