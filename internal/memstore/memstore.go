// Package memstore provides an in-memory implementation of the versioned
// object store. It backs tests of the sync orchestrator and merge resolver
// without touching the network, and can simulate a concurrent external
// writer and injected transport failures.
package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/mesh-intelligence/logbook/pkg/types"
)

// Compile-time interface check: Store must implement types.Store.
var _ types.Store = (*Store)(nil)

// blob is one stored object with its monotonically increasing revision.
type blob struct {
	content  string
	revision int
}

// Store is an in-memory versioned blob store. Version tokens are "r1", "r2",
// ... per path. The seen map mirrors the process-local version cache a real
// client keeps: it only advances through Read and Write, so an ExternalPut
// leaves the caller's cached version stale and the next Write conflicts.
type Store struct {
	mu         sync.Mutex
	blobs      map[string]*blob
	seen       map[string]string
	readErrs   map[string]error
	writeErrs  map[string]error
	writeCount map[string]int
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		blobs:      make(map[string]*blob),
		seen:       make(map[string]string),
		readErrs:   make(map[string]error),
		writeErrs:  make(map[string]error),
		writeCount: make(map[string]int),
	}
}

func token(revision int) string {
	return fmt.Sprintf("r%d", revision)
}

// Read returns the blob at path. Absent paths report Exists=false.
func (s *Store) Read(ctx context.Context, path string) (types.ReadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.readErrs[path]; err != nil {
		return types.ReadResult{}, err
	}

	b, ok := s.blobs[path]
	if !ok {
		return types.ReadResult{Exists: false}, nil
	}
	version := token(b.revision)
	s.seen[path] = version
	return types.ReadResult{Exists: true, Content: b.content, Version: version}, nil
}

// Write upserts the blob at path, enforcing the version check: an existing
// blob requires expectedVersion to match its current token, and a missing
// blob requires an empty expectedVersion.
func (s *Store) Write(ctx context.Context, path, content, expectedVersion, message string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.writeCount[path]++
	if err := s.writeErrs[path]; err != nil {
		return "", err
	}

	b, ok := s.blobs[path]
	if ok {
		if expectedVersion != token(b.revision) {
			return "", types.ErrVersionConflict
		}
		b.content = content
		b.revision++
	} else {
		if expectedVersion != "" {
			return "", types.ErrVersionConflict
		}
		b = &blob{content: content, revision: 1}
		s.blobs[path] = b
	}

	version := token(b.revision)
	s.seen[path] = version
	return version, nil
}

// Version returns the last version token observed through Read or Write.
func (s *Store) Version(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seen[path]
}

// ExternalPut overwrites the blob as a concurrent external writer would:
// the revision advances but the session's seen cache is left stale.
func (s *Store) ExternalPut(path, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.blobs[path]; ok {
		b.content = content
		b.revision++
		return
	}
	s.blobs[path] = &blob{content: content, revision: 1}
}

// FailReads makes every Read of path fail with err until cleared with nil.
func (s *Store) FailReads(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.readErrs, path)
		return
	}
	s.readErrs[path] = err
}

// FailWrites makes every Write of path fail with err until cleared with nil.
func (s *Store) FailWrites(path string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.writeErrs, path)
		return
	}
	s.writeErrs[path] = err
}

// Content returns the current blob content, or false if the path is absent.
func (s *Store) Content(path string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.blobs[path]
	if !ok {
		return "", false
	}
	return b.content, true
}

// WriteCount returns how many Write calls path has received, including
// rejected ones.
func (s *Store) WriteCount(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeCount[path]
}
