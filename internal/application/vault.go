package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"smartvault/internal/domain"
	"smartvault/internal/ports"
)

// RefreshScope selects which cached collections a mutation refetches
type RefreshScope uint8

const (
	RefreshNone    RefreshScope = 0
	RefreshRecords RefreshScope = 1 << 0
	RefreshHistory RefreshScope = 1 << 1
	RefreshAll                  = RefreshRecords | RefreshHistory
)

func (s RefreshScope) String() string {
	var parts []string
	if s&RefreshRecords != 0 {
		parts = append(parts, "records")
	}
	if s&RefreshHistory != 0 {
		parts = append(parts, "history")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// VaultState is an immutable view of the last successful fetch of each
// collection. Slices are replaced, never edited, so a copy is safe to
// read without holding the vault lock.
type VaultState struct {
	Records   []domain.FileRecord
	Deleted   []domain.DeletedEntry
	Snapshots []domain.SnapshotInfo
	Dropped   int
	LoadedAt  time.Time
}

// Summary counts what the status bar shows
type Summary struct {
	Files           int
	DuplicateGroups int
	DeletedRecords  int
}

// Summary counts files, duplicate groups and bin entries in the state
func (s VaultState) Summary() Summary {
	return Summary{
		Files:           len(s.Records),
		DuplicateGroups: len(domain.FindDuplicates(s.Records)),
		DeletedRecords:  len(s.Deleted),
	}
}

// Mutation is one state-changing backend command
type Mutation struct {
	Action string
	Target string
	Scope  RefreshScope
	Run    func(ctx context.Context) (string, error)
}

// Vault caches backend collections. The cache is a pure function of the
// last successful full fetch: a mutation never patches it, it only
// triggers a refetch, and a failed fetch leaves the previous value.
// Concurrent refreshes are not serialized; whichever resolves last wins.
type Vault struct {
	backend ports.VaultBackend
	journal ports.ActivityJournal
	logger  *zap.Logger
	now     func() time.Time

	mu    sync.RWMutex
	state VaultState
}

// VaultOption configures a Vault
type VaultOption func(*Vault)

// WithJournal records every mutation in j
func WithJournal(j ports.ActivityJournal) VaultOption {
	return func(v *Vault) { v.journal = j }
}

// WithLogger sets the logger used for refresh and mutation events
func WithLogger(l *zap.Logger) VaultOption {
	return func(v *Vault) {
		if l != nil {
			v.logger = l
		}
	}
}

// NewVault creates an empty cache over backend
func NewVault(backend ports.VaultBackend, opts ...VaultOption) *Vault {
	v := &Vault{
		backend: backend,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Backend returns the underlying command surface
func (v *Vault) Backend() ports.VaultBackend {
	return v.backend
}

// State returns the current cached collections
func (v *Vault) State() VaultState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Records returns the cached records
func (v *Vault) Records() []domain.FileRecord {
	return v.State().Records
}

// Load fetches every collection
func (v *Vault) Load(ctx context.Context) error {
	return v.Refresh(ctx, RefreshAll)
}

// Refresh refetches the collections in scope. Each collection is replaced
// only when its own fetch succeeds; failures are joined.
func (v *Vault) Refresh(ctx context.Context, scope RefreshScope) error {
	if scope == RefreshNone {
		return nil
	}

	var (
		g                           errgroup.Group
		recErr, deletedErr, snapErr error
	)

	if scope&RefreshRecords != 0 {
		g.Go(func() error {
			raws, err := v.backend.ListRecords(ctx)
			if err != nil {
				recErr = fmt.Errorf("failed to list records: %w", err)
				return recErr
			}
			records, dropped := domain.DecodeRecords(raws)
			if dropped > 0 {
				v.logger.Debug("dropped malformed records", zap.Int("dropped", dropped))
			}
			v.mu.Lock()
			v.state.Records = records
			v.state.Dropped = dropped
			v.state.LoadedAt = v.now()
			v.mu.Unlock()
			return nil
		})
	}

	if scope&RefreshHistory != 0 {
		g.Go(func() error {
			deleted, err := v.backend.ListDeleted(ctx)
			if err != nil {
				deletedErr = fmt.Errorf("failed to list deleted files: %w", err)
				return deletedErr
			}
			v.mu.Lock()
			v.state.Deleted = deleted
			v.mu.Unlock()
			return nil
		})
		g.Go(func() error {
			snapshots, err := v.backend.ListSnapshots(ctx)
			if err != nil {
				snapErr = fmt.Errorf("failed to list snapshots: %w", err)
				return snapErr
			}
			v.mu.Lock()
			v.state.Snapshots = snapshots
			v.mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()
	err := errors.Join(recErr, deletedErr, snapErr)

	state := v.State()
	if err != nil {
		v.logger.Warn("refresh failed", zap.Stringer("scope", scope), zap.Error(err))
	} else {
		v.logger.Debug("refreshed",
			zap.Stringer("scope", scope),
			zap.Int("records", len(state.Records)),
			zap.Int("deleted", len(state.Deleted)),
			zap.Int("snapshots", len(state.Snapshots)),
		)
	}
	return err
}

// Mutate runs m and, on success, refetches its scope. On failure the cache
// is left untouched. A refetch failure after a successful command is
// returned as a *RefreshError alongside the command's message.
func (v *Vault) Mutate(ctx context.Context, m Mutation) (string, error) {
	started := v.now()
	msg, err := m.Run(ctx)
	v.record(ctx, m, started, msg, err)

	if err != nil {
		v.logger.Warn("mutation failed",
			zap.String("action", m.Action),
			zap.String("target", m.Target),
			zap.Error(err),
		)
		return "", err
	}

	v.logger.Info("mutation applied",
		zap.String("action", m.Action),
		zap.String("target", m.Target),
		zap.Duration("took", v.now().Sub(started)),
	)

	if rerr := v.Refresh(ctx, m.Scope); rerr != nil {
		return msg, &RefreshError{Scope: m.Scope, Err: rerr}
	}
	return msg, nil
}

func (v *Vault) record(ctx context.Context, m Mutation, started time.Time, msg string, err error) {
	if v.journal == nil {
		return
	}
	entry := ports.ActivityEntry{
		ID:        uuid.NewString(),
		Action:    m.Action,
		Target:    m.Target,
		OK:        err == nil,
		Message:   msg,
		StartedAt: started,
		Duration:  v.now().Sub(started),
	}
	if err != nil {
		entry.Message = err.Error()
	}
	if jerr := v.journal.Record(ctx, entry); jerr != nil {
		v.logger.Warn("journal write failed", zap.String("action", m.Action), zap.Error(jerr))
	}
}
