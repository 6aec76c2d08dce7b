// Package records implements the entity repository: the in-memory dataset
// plus the query, derivation, and validation logic everything else calls.
// All queries are pure projections over the dataset; mutations validate and
// stage changes in memory, and become durable only when the caller pushes
// the dataset through the sync orchestrator.
package records

import (
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/logbook/pkg/types"
)

// timeNow is stubbed in tests to pin timestamps.
var timeNow = time.Now

// Book wraps a Dataset with the repository operations. It is not safe for
// concurrent use; the session owns it exclusively and serializes mutations.
type Book struct {
	data *types.Dataset
}

// NewBook creates a repository over the given dataset. A nil dataset starts
// empty.
func NewBook(data *types.Dataset) *Book {
	if data == nil {
		data = types.NewDataset()
	}
	return &Book{data: data}
}

// Data returns the underlying dataset for encoding and persistence.
func (b *Book) Data() *types.Dataset {
	return b.data
}

// newID returns a fresh opaque unique token. IDs are assigned once at
// creation and never reassigned or reused.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// nowStamp returns the current instant as an RFC 3339 UTC timestamp.
func nowStamp() string {
	return timeNow().UTC().Format(time.RFC3339)
}
