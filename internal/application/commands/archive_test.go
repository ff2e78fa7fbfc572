package commands

import (
	"context"
	"testing"

	"smartvault/internal/adapters/memory"
	"smartvault/internal/application"
)

// loadedVault returns a vault over backend with every collection fetched
func loadedVault(t *testing.T, backend *memory.Backend) *application.Vault {
	t.Helper()
	vault := application.NewVault(backend)
	if err := vault.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return vault
}

func TestCompressCommand_OutputFile(t *testing.T) {
	tests := []struct {
		name   string
		paths  []string
		output string
		want   string
	}{
		{
			name:  "single file defaults to its stem beside it",
			paths: []string{"photos/trip/beach.jpg"},
			want:  "photos/trip/beach.zip",
		},
		{
			name:  "several paths default to archive",
			paths: []string{"docs/a.txt", "docs/b.txt"},
			want:  "docs/archive.zip",
		},
		{
			name:   "bare name gets extension and folder",
			paths:  []string{"docs/a.txt"},
			output: "bundle",
			want:   "docs/bundle.zip",
		},
		{
			name:   "full path kept",
			paths:  []string{"docs/a.txt"},
			output: "/tmp/out.ZIP",
			want:   "/tmp/out.ZIP",
		},
		{
			name:  "source at root",
			paths: []string{"a.txt"},
			want:  "a.zip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewCompressCommand(nil, tt.paths, tt.output)
			if got := cmd.OutputFile(); got != tt.want {
				t.Errorf("OutputFile() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompressCommand_Execute(t *testing.T) {
	backend := memory.New().Seed("h1", "docs/a.txt", 1, "")
	vault := loadedVault(t, backend)

	result, err := NewCompressCommand(vault, []string{"docs/a.txt"}, "").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !contains(result.Message, "docs/a.zip") {
		t.Errorf("unexpected message %q", result.Message)
	}
	if n := backend.Count("ListRecords"); n != 1 {
		t.Errorf("compress must not refetch, got %d list calls", n)
	}
}

func TestCompressCommand_Validate(t *testing.T) {
	if err := NewCompressCommand(nil, nil, "x").Validate(); err == nil {
		t.Error("expected error for no paths")
	}
	if err := NewCompressCommand(nil, []string{" "}, "x").Validate(); err == nil {
		t.Error("expected error for blank path")
	}
}

func TestExtractCommand(t *testing.T) {
	t.Run("default dir beside archive", func(t *testing.T) {
		cmd := NewExtractCommand(nil, "downloads/pack.zip", "")
		if got := cmd.Dir(); got != "downloads/pack" {
			t.Errorf("Dir() = %q", got)
		}
	})

	t.Run("rejects non archive", func(t *testing.T) {
		err := NewExtractCommand(nil, "downloads/pack.txt", "").Validate()
		if err == nil || !contains(err.Error(), "not an archive") {
			t.Errorf("expected not an archive error, got %v", err)
		}
	})

	t.Run("refetches records", func(t *testing.T) {
		backend := memory.New().Seed("z", "downloads/pack.zip", 1, "")
		vault := loadedVault(t, backend)

		if _, err := NewExtractCommand(vault, "downloads/pack.zip", "out").Execute(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n := backend.Count("ListRecords"); n != 2 {
			t.Errorf("expected refetch, got %d list calls", n)
		}
		if n := backend.Count("ListDeleted"); n != 1 {
			t.Errorf("extract must not refetch history, got %d", n)
		}
	})
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (s == substr || len(substr) == 0 ||
		(len(s) > 0 && len(substr) > 0 && findSubstring(s, substr)))
}

func findSubstring(s, substr string) bool {
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
