// Shared helpers for logbook CLI commands.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/logbook/internal/records"
	"github.com/mesh-intelligence/logbook/internal/sync"
	"github.com/mesh-intelligence/logbook/pkg/types"
)

// Commit messages for the data repository, in conventional-commit form.
const (
	msgSync        = "chore(data): sync"
	msgSeed        = "feat(data): initialize seed data"
	msgAddEntry    = "feat(data): add weekly entry"
	msgUpdateEntry = "feat(data): update weekly entry"
	msgAddStudent  = "feat(data): add student"
)

// loadBook loads the remote dataset and wraps it in a repository. Commands
// that mutate records require the hydrated state; anything else is an error
// with a hint toward init.
func loadBook(ctx context.Context) (*records.Book, error) {
	res, err := syn.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	switch res.State {
	case sync.StateHydrated:
		return records.NewBook(res.Data), nil
	case sync.StateOffline:
		return nil, fmt.Errorf("remote store unreachable; check network and configuration")
	default:
		return nil, fmt.Errorf("remote data not initialized; run \"logbook init\" first")
	}
}

// findStudent resolves a student by id, email, or exact full name.
func findStudent(b *records.Book, key string) (types.Student, error) {
	if s, ok := b.StudentByID(key); ok {
		return s, nil
	}
	for _, s := range b.Data().Students {
		if strings.EqualFold(s.Email, key) || s.FullName == key {
			return s, nil
		}
	}
	return types.Student{}, fmt.Errorf("student %q: %w", key, types.ErrStudentNotFound)
}
