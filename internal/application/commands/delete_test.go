package commands

import (
	"context"
	"errors"
	"testing"

	"smartvault/internal/adapters/memory"
	"smartvault/internal/application"
	"smartvault/internal/domain"
)

func TestDeleteToBinCommand(t *testing.T) {
	backend := memory.New().
		Seed("h1", "photos/a.jpg", 1, "").
		Seed("h2", "photos/b.jpg", 1, "")
	vault := loadedVault(t, backend)

	result, err := NewDeleteToBinCommand(vault, "h1", "photos/a.jpg").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message != "Moved to bin: a.jpg" {
		t.Errorf("Message = %q", result.Message)
	}

	state := vault.State()
	if len(state.Records) != 1 {
		t.Errorf("expected one record left, got %d", len(state.Records))
	}
	if len(state.Deleted) != 1 || state.Deleted[0].Hash != "h1" {
		t.Errorf("expected history refreshed, got %+v", state.Deleted)
	}
}

func TestDeleteToBinCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		hash    string
		path    string
		wantErr bool
	}{
		{name: "valid", hash: "h", path: "a.jpg"},
		{name: "no hash", path: "a.jpg", wantErr: true},
		{name: "no path", hash: "h", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDeleteToBinCommand(nil, tt.hash, tt.path).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDeleteFolderCommand(t *testing.T) {
	backend := memory.New().
		Seed("h1", "photos/trip/a.jpg", 1, "").
		Seed("h2", "photos/trip/b.jpg", 1, "").
		Seed("h3", "photos/c.jpg", 1, "")
	vault := loadedVault(t, backend)

	result, err := NewDeleteFolderCommand(vault, "photos/trip").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Message != "Moved 2 files to bin" {
		t.Errorf("Message = %q", result.Message)
	}
	if got := len(vault.State().Deleted); got != 2 {
		t.Errorf("expected 2 bin entries, got %d", got)
	}
}

func TestPermanentDeleteCommand(t *testing.T) {
	t.Run("requires confirmation", func(t *testing.T) {
		backend := memory.New().Seed("h1", "a.jpg", 1, "")
		vault := loadedVault(t, backend)

		_, err := NewPermanentDeleteCommand(vault, "h1", "a.jpg", false).Execute(context.Background())

		if !errors.Is(err, application.ErrNotConfirmed) {
			t.Errorf("expected ErrNotConfirmed, got %v", err)
		}
		if backend.Count("PermanentDelete") != 0 {
			t.Error("backend must not be called without confirmation")
		}
	})

	t.Run("confirmed removes without bin entry", func(t *testing.T) {
		backend := memory.New().Seed("h1", "a.jpg", 1, "")
		vault := loadedVault(t, backend)

		if _, err := NewPermanentDeleteCommand(vault, "h1", "a.jpg", true).Execute(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		state := vault.State()
		if len(state.Records) != 0 || len(state.Deleted) != 0 {
			t.Errorf("unexpected state %+v", state)
		}
	})
}

func TestResetVaultCommand(t *testing.T) {
	backend := memory.New().
		Seed("h1", "a.jpg", 1, "").
		SeedDeleted(domain.DeletedEntry{Hash: "x"})
	vault := loadedVault(t, backend)

	if _, err := NewResetVaultCommand(vault, false).Execute(context.Background()); !errors.Is(err, application.ErrNotConfirmed) {
		t.Errorf("expected ErrNotConfirmed, got %v", err)
	}

	if _, err := NewResetVaultCommand(vault, true).Execute(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vault.Records()) != 0 {
		t.Error("expected empty vault")
	}
	if len(vault.State().Deleted) != 1 {
		t.Error("reset must not touch history")
	}
}

func TestHistoryCommands(t *testing.T) {
	backend := memory.New().
		SeedDeleted(domain.DeletedEntry{Hash: "x", Path: "old.txt", DeletedAt: 20}).
		SeedSnapshot(domain.SnapshotInfo{Name: "first", Timestamp: 10}).
		SeedSnapshot(domain.SnapshotInfo{Name: "second", Timestamp: 30})
	vault := loadedVault(t, backend)
	ctx := context.Background()

	deleted, _ := NewListHistoryCommand(vault).Execute(ctx)
	snaps, _ := NewListSnapshotsCommand(vault).Execute(ctx)
	if len(deleted) != 1 || len(snaps) != 2 {
		t.Fatalf("unexpected history %d / %d", len(deleted), len(snaps))
	}

	if _, err := NewDeleteSnapshotCommand(vault, "first", 10).Execute(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snaps, _ = NewListSnapshotsCommand(vault).Execute(ctx)
	if len(snaps) != 1 || snaps[0].Name != "second" {
		t.Errorf("unexpected snapshots %+v", snaps)
	}

	if _, err := NewClearHistoryCommand(vault).Execute(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	deleted, _ = NewListHistoryCommand(vault).Execute(ctx)
	if len(deleted) != 0 {
		t.Errorf("expected empty history, got %+v", deleted)
	}
	if backend.Count("ListRecords") != 1 {
		t.Error("history commands must not refetch records")
	}

	if err := NewDeleteSnapshotCommand(vault, "", 0).Validate(); err == nil {
		t.Error("expected validation error for empty snapshot name")
	}
}
