package types

import (
	"context"
	"errors"
	"fmt"
)

// Store abstracts one remote blob per entity collection, each addressed by a
// stable path and carrying an opaque version token. Implementations cache the
// last-seen version per path so the sync orchestrator can write without a
// redundant version lookup.
type Store interface {
	// Read fetches the blob at path. A remote "not found" is a normal
	// outcome reported as Exists=false, not an error.
	Read(ctx context.Context, path string) (ReadResult, error)

	// Write upserts the blob at path. expectedVersion must be the current
	// version token for an existing blob and empty only when creating a
	// path known not to exist. Returns the new version token. A stale
	// expectedVersion fails with ErrVersionConflict; writing without a
	// credential fails fast with ErrWriteDisabled.
	Write(ctx context.Context, path, content, expectedVersion, message string) (string, error)

	// Version returns the last-seen version token for path, or empty if
	// the path has not been read or written this session.
	Version(path string) string
}

// ReadResult is the outcome of a Store.Read.
type ReadResult struct {
	Exists  bool
	Content string
	Version string
}

// Store errors.
var (
	// ErrWriteDisabled means a write was attempted without sufficient
	// configuration (repository identifiers plus credential). Checked
	// before any network call.
	ErrWriteDisabled = errors.New("write disabled: owner, repo, branch, and token are required")

	// ErrVersionConflict means the store rejected a write because the
	// expected version is stale. Recoverable by re-reading, merging, and
	// retrying exactly once.
	ErrVersionConflict = errors.New("version conflict")

	// ErrSyncFailed means a conflict persisted through the single retry.
	// Terminal for the affected path.
	ErrSyncFailed = errors.New("sync failed after conflict retry")
)

// TransportError is any non-success store response other than "not found"
// and a version conflict. It is never retried by the core.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("store request failed with status %d: %s", e.StatusCode, e.Body)
}
