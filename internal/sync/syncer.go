// Package sync coordinates loading and persisting all five collections
// through the versioned store, applying the codec and the merge resolver
// consistently per path. Writes are strictly sequential: a conflict on an
// earlier path is fully resolved, retry included, before the next path's
// write is attempted.
package sync

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/logbook/internal/seed"
	"github.com/mesh-intelligence/logbook/internal/tabular"
	"github.com/mesh-intelligence/logbook/pkg/types"
)

// Load outcomes.
const (
	// StateHydrated means every collection blob existed and decoded.
	StateHydrated = "hydrated"

	// StateUninitialized means at least one blob was absent. Partial
	// state is never exposed as loaded; the caller decides whether to
	// seed.
	StateUninitialized = "uninitialized"

	// StateOffline means the store was unreachable and the result holds
	// synthesized demo data for read-only use.
	StateOffline = "offline_fallback"
)

// LoadResult is the outcome of LoadAll. Data is nil for StateUninitialized.
type LoadResult struct {
	State string
	Data  *types.Dataset
}

// Syncer drives load and save across the five collection paths.
type Syncer struct {
	store  types.Store
	logger zerolog.Logger
}

// New creates a Syncer over the given store.
func New(store types.Store) *Syncer {
	return &Syncer{store: store, logger: zerolog.Nop()}
}

// SetLogger sets the structured logger for the syncer.
func (s *Syncer) SetLogger(logger zerolog.Logger) {
	s.logger = logger
}

// LoadAll reads all five collection paths sequentially. All present decodes
// to Hydrated; any absent yields Uninitialized; a transport failure yields
// the offline fallback with synthesized demo data. Undecodable remote
// content is surfaced as an error rather than masked by the fallback.
func (s *Syncer) LoadAll(ctx context.Context) (*LoadResult, error) {
	data := types.NewDataset()
	missing := false

	for _, c := range tabular.All {
		res, err := s.store.Read(ctx, c.Path)
		if err != nil {
			s.logger.Warn().Err(err).Str("path", c.Path).Msg("load failed, falling back to demo data")
			demo, seedErr := seed.Demo()
			if seedErr != nil {
				return nil, seedErr
			}
			return &LoadResult{State: StateOffline, Data: demo}, nil
		}
		if !res.Exists {
			missing = true
			continue
		}
		if err := tabular.DecodeCollectionInto(c, data, res.Content); err != nil {
			return nil, fmt.Errorf("decoding %s: %w", c.Path, err)
		}
	}

	if missing {
		return &LoadResult{State: StateUninitialized}, nil
	}
	s.logger.Debug().Int("students", len(data.Students)).Int("entries", len(data.WeeklyEntries)).Msg("dataset hydrated")
	return &LoadResult{State: StateHydrated, Data: data}, nil
}

// SaveAll encodes and writes each collection independently, one path at a
// time. A version conflict is resolved for that path alone via the merge
// union and a single retry. The first unrecovered error stops the run:
// earlier writes stand, later paths are never attempted, and the caller
// must treat the save as partially applied.
func (s *Syncer) SaveAll(ctx context.Context, data *types.Dataset, message string) error {
	for _, c := range tabular.All {
		content, err := tabular.EncodeCollection(c, data)
		if err != nil {
			return err
		}

		_, err = s.store.Write(ctx, c.Path, content, s.store.Version(c.Path), message)
		if err == nil {
			continue
		}
		if !errors.Is(err, types.ErrVersionConflict) {
			return fmt.Errorf("saving %s: %w", c.Path, err)
		}

		s.logger.Info().Str("path", c.Path).Msg("version conflict, merging and retrying")
		if err := s.resolveConflict(ctx, c, content, message); err != nil {
			return err
		}
	}
	return nil
}

// resolveConflict re-reads the conflicted path, merges remote and local
// record sets by id with local precedence, and retries the write exactly
// once against the freshly observed version.
func (s *Syncer) resolveConflict(ctx context.Context, c tabular.Collection, localContent, message string) error {
	res, err := s.store.Read(ctx, c.Path)
	if err != nil {
		return fmt.Errorf("re-reading %s after conflict: %w", c.Path, err)
	}

	var remoteRows []tabular.Row
	if res.Exists {
		remoteRows, err = tabular.DecodeRows(res.Content)
		if err != nil {
			return fmt.Errorf("decoding remote %s after conflict: %w", c.Path, err)
		}
	}
	localRows, err := tabular.DecodeRows(localContent)
	if err != nil {
		return fmt.Errorf("decoding local %s after conflict: %w", c.Path, err)
	}

	merged := tabular.EncodeRows(MergeByID(remoteRows, localRows), c.Columns)

	_, err = s.store.Write(ctx, c.Path, merged, res.Version, message+" (retry)")
	if err == nil {
		return nil
	}
	if errors.Is(err, types.ErrVersionConflict) {
		return fmt.Errorf("%s: %w", c.Path, types.ErrSyncFailed)
	}
	return fmt.Errorf("retrying %s: %w", c.Path, err)
}
