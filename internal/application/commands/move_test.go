package commands

import (
	"context"
	"errors"
	"testing"

	"smartvault/internal/adapters/memory"
	"smartvault/internal/application"
	"smartvault/internal/domain"
)

func TestMoveFolderCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		oldPath string
		dest    string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid move",
			oldPath: "root/photos",
			dest:    "root/archive",
		},
		{
			name:    "empty source",
			oldPath: "",
			dest:    "root/archive",
			wantErr: true,
			errMsg:  "old path is required",
		},
		{
			name:    "empty destination",
			oldPath: "root/photos",
			dest:    " ",
			wantErr: true,
			errMsg:  "destination is required",
		},
		{
			name:    "into itself",
			oldPath: "root/photos",
			dest:    "root/photos/2024",
			wantErr: true,
			errMsg:  "inside the folder being moved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMoveFolderCommand(nil, tt.oldPath, tt.dest).Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMoveFileCommand_Execute(t *testing.T) {
	backend := memory.New().Seed("h1", "inbox/a.jpg", 1, "")
	vault := loadedVault(t, backend)

	result, err := NewMoveFileCommand(vault, "h1", "photos").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NewPath != "photos/a.jpg" {
		t.Errorf("NewPath = %q", result.NewPath)
	}
	if result.Message != "Moved to: photos/a.jpg" {
		t.Errorf("Message = %q", result.Message)
	}
	if got := vault.Records()[0].Path; got != "photos/a.jpg" {
		t.Errorf("cache not refreshed, path %q", got)
	}
}

func TestPasteCommand(t *testing.T) {
	setup := func(t *testing.T) (*memory.Backend, *application.Vault, *application.Clipboard) {
		t.Helper()
		backend := memory.New().
			Seed("h1", "inbox/a.jpg", 1, "").
			Seed("h2", "inbox/trip/b.jpg", 1, "")
		return backend, loadedVault(t, backend), application.NewClipboard()
	}

	t.Run("empty destination is a no-op", func(t *testing.T) {
		backend, vault, clip := setup(t)
		clip.Cut(domain.ClipboardItem{Hash: "h1", Path: "inbox/a.jpg", Name: "a.jpg"})
		_, _ = clip.BeginPaste()

		_, err := NewPasteCommand(vault, clip, "   ").Execute(context.Background())

		if !errors.Is(err, application.ErrEmptyDestination) {
			t.Errorf("expected ErrEmptyDestination, got %v", err)
		}
		if backend.Count("MoveFile")+backend.Count("MoveFolder") != 0 {
			t.Error("backend must not be called")
		}
		if clip.State() != application.ClipboardPasting {
			t.Errorf("clipboard should stay pasting, got %s", clip.State())
		}
	})

	t.Run("nothing cut", func(t *testing.T) {
		_, vault, clip := setup(t)
		_, err := NewPasteCommand(vault, clip, "photos").Execute(context.Background())
		if !errors.Is(err, application.ErrNothingCut) {
			t.Errorf("expected ErrNothingCut, got %v", err)
		}
	})

	t.Run("file uses one file move", func(t *testing.T) {
		backend, vault, clip := setup(t)
		clip.Cut(domain.ClipboardItem{Hash: "h1", Path: "inbox/a.jpg", Name: "a.jpg"})

		result, err := NewPasteCommand(vault, clip, "photos").Execute(context.Background())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if backend.Count("MoveFile") != 1 || backend.Count("MoveFolder") != 0 {
			t.Errorf("expected exactly one file move, calls %+v", backend.Calls())
		}
		if result.NewPath != "photos/a.jpg" {
			t.Errorf("NewPath = %q", result.NewPath)
		}
		if clip.State() != application.ClipboardEmpty {
			t.Errorf("clipboard should be empty, got %s", clip.State())
		}
	})

	t.Run("folder uses one folder move", func(t *testing.T) {
		backend, vault, clip := setup(t)
		clip.Cut(domain.ClipboardItem{Name: "trip", IsFolder: true, FolderPath: "inbox/trip"})

		result, err := NewPasteCommand(vault, clip, "archive").Execute(context.Background())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if backend.Count("MoveFolder") != 1 || backend.Count("MoveFile") != 0 {
			t.Errorf("expected exactly one folder move, calls %+v", backend.Calls())
		}
		if result.NewPath != "archive/trip" {
			t.Errorf("NewPath = %q", result.NewPath)
		}
	})

	t.Run("backend failure keeps clipboard and cache", func(t *testing.T) {
		backend, vault, clip := setup(t)
		item := domain.ClipboardItem{Hash: "h1", Path: "inbox/a.jpg", Name: "a.jpg"}
		clip.Cut(item)
		_, _ = clip.BeginPaste()
		before := vault.Records()
		backend.FailOn("MoveFile", errors.New("disk full"))

		_, err := NewPasteCommand(vault, clip, "photos").Execute(context.Background())

		if err == nil || !contains(err.Error(), "disk full") {
			t.Errorf("expected backend error, got %v", err)
		}
		if held, ok := clip.Item(); !ok || held != item {
			t.Error("clipboard should still hold the item")
		}
		if clip.State() != application.ClipboardCut {
			t.Errorf("failed paste should return to cut, got %s", clip.State())
		}
		if vault.Records()[0].Path != before[0].Path {
			t.Error("cache must be untouched on failure")
		}
	})
}
