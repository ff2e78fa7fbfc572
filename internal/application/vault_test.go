package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartvault/internal/adapters/memory"
	"smartvault/internal/application"
	"smartvault/internal/domain"
	"smartvault/internal/ports"
)

var errBoom = errors.New("boom")

type recordingJournal struct {
	entries []ports.ActivityEntry
	err     error
}

func (j *recordingJournal) Record(_ context.Context, e ports.ActivityEntry) error {
	j.entries = append(j.entries, e)
	return j.err
}

func (j *recordingJournal) Recent(context.Context, int) ([]ports.ActivityEntry, error) {
	return j.entries, nil
}

func (j *recordingJournal) Close() error { return nil }

func seeded() *memory.Backend {
	return memory.New().
		Seed("h1", "a/b/c.jpg", 10, "2025-06-14 10:00").
		Seed("h1", "a/b/c2.jpg", 10, "2025-06-14 11:00").
		Seed("h2", "a/d.txt", 5, "").
		SeedRaw("bad", "not json").
		SeedDeleted(domain.DeletedEntry{Hash: "old", Path: "x/old.txt", DeletedAt: 100}).
		SeedSnapshot(domain.SnapshotInfo{Name: "first", Timestamp: 50, FileCount: 3})
}

func TestVaultLoad(t *testing.T) {
	backend := seeded()
	vault := application.NewVault(backend)

	require.NoError(t, vault.Load(context.Background()))

	state := vault.State()
	assert.Len(t, state.Records, 3)
	assert.Equal(t, 1, state.Dropped)
	assert.Len(t, state.Deleted, 1)
	assert.Len(t, state.Snapshots, 1)
	assert.False(t, state.LoadedAt.IsZero())

	assert.Equal(t, application.Summary{Files: 3, DuplicateGroups: 1, DeletedRecords: 1}, state.Summary())
}

func TestVaultRefreshKeepsSuccessfulCollections(t *testing.T) {
	backend := seeded()
	vault := application.NewVault(backend)
	require.NoError(t, vault.Load(context.Background()))

	backend.Seed("h3", "a/new.png", 1, "")
	backend.FailOn("ListSnapshots", errBoom)

	err := vault.Refresh(context.Background(), application.RefreshAll)

	require.ErrorIs(t, err, errBoom)
	state := vault.State()
	assert.Len(t, state.Records, 4, "records fetch succeeded and must be replaced")
	assert.Len(t, state.Snapshots, 1, "failed fetch keeps previous snapshots")
}

func TestVaultRefreshFailureLeavesCache(t *testing.T) {
	backend := seeded()
	vault := application.NewVault(backend)
	require.NoError(t, vault.Load(context.Background()))
	before := vault.State()

	backend.FailOn("ListRecords", errBoom)
	err := vault.Refresh(context.Background(), application.RefreshRecords)

	require.Error(t, err)
	assert.Equal(t, before.Records, vault.State().Records)
}

func TestVaultMutate(t *testing.T) {
	t.Run("success refetches scope", func(t *testing.T) {
		backend := seeded()
		journal := &recordingJournal{}
		vault := application.NewVault(backend, application.WithJournal(journal))
		require.NoError(t, vault.Load(context.Background()))

		msg, err := vault.Mutate(context.Background(), application.Mutation{
			Action: "delete-to-bin",
			Target: "a/d.txt",
			Scope:  application.RefreshAll,
			Run: func(ctx context.Context) (string, error) {
				return "done", backend.DeleteToBin(ctx, "h2", "a/d.txt")
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "done", msg)
		assert.Len(t, vault.State().Records, 2)
		assert.Len(t, vault.State().Deleted, 2)
		assert.Equal(t, 2, backend.Count("ListRecords"))
		assert.Equal(t, 2, backend.Count("ListDeleted"))

		require.Len(t, journal.entries, 1)
		assert.True(t, journal.entries[0].OK)
		assert.Equal(t, "delete-to-bin", journal.entries[0].Action)
		assert.NotEmpty(t, journal.entries[0].ID)
	})

	t.Run("failure skips refetch and keeps cache", func(t *testing.T) {
		backend := seeded()
		journal := &recordingJournal{}
		vault := application.NewVault(backend, application.WithJournal(journal))
		require.NoError(t, vault.Load(context.Background()))
		before := vault.State()

		_, err := vault.Mutate(context.Background(), application.Mutation{
			Action: "rename",
			Scope:  application.RefreshRecords,
			Run: func(context.Context) (string, error) {
				return "", errBoom
			},
		})

		require.ErrorIs(t, err, errBoom)
		assert.Equal(t, before, vault.State())
		assert.Equal(t, 1, backend.Count("ListRecords"))
		require.Len(t, journal.entries, 1)
		assert.False(t, journal.entries[0].OK)
		assert.Equal(t, "boom", journal.entries[0].Message)
	})

	t.Run("refresh failure after success", func(t *testing.T) {
		backend := seeded()
		vault := application.NewVault(backend)

		backend.FailOn("ListRecords", errBoom)
		msg, err := vault.Mutate(context.Background(), application.Mutation{
			Action: "add",
			Scope:  application.RefreshRecords,
			Run:    func(context.Context) (string, error) { return "added", nil },
		})

		assert.Equal(t, "added", msg)
		var refreshErr *application.RefreshError
		require.ErrorAs(t, err, &refreshErr)
		assert.Equal(t, application.RefreshRecords, refreshErr.Scope)
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("journal failure does not fail the action", func(t *testing.T) {
		backend := seeded()
		vault := application.NewVault(backend, application.WithJournal(&recordingJournal{err: errBoom}))

		_, err := vault.Mutate(context.Background(), application.Mutation{
			Action: "compress",
			Scope:  application.RefreshNone,
			Run:    func(context.Context) (string, error) { return "ok", nil },
		})

		require.NoError(t, err)
		assert.Zero(t, backend.Count("ListRecords"))
	})
}

func TestRefreshScopeString(t *testing.T) {
	assert.Equal(t, "none", application.RefreshNone.String())
	assert.Equal(t, "records", application.RefreshRecords.String())
	assert.Equal(t, "records+history", application.RefreshAll.String())
}
